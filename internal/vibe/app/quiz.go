package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	catalogdomain "github.com/vibevapes/storefront/internal/catalog/domain"
)

type Stage string

const (
	StageQuiz    Stage = "quiz"
	StageLoading Stage = "loading"
	StageResult  Stage = "result"
	StageError   Stage = "error"
)

var (
	ErrUnknownSession = errors.New("unknown quiz session")
	ErrQuizFinished   = errors.New("quiz already finished")
)

type Question struct {
	Question string   `json:"question"`
	Answers  []string `json:"answers"`
}

type Recommendation struct {
	Product catalogdomain.Product `json:"product"`
	Reason  string                `json:"reason"`
}

// Recommender is the AI boundary as the quiz sees it.
type Recommender interface {
	Recommend(ctx context.Context, answers [3]string, products []catalogdomain.Product) (Recommendation, error)
}

type Catalog interface {
	List(ctx context.Context) ([]catalogdomain.Product, error)
}

// Session is one run through the quiz: three answers, then a recommendation
// or a retryable error.
type Session struct {
	ID       string          `json:"id"`
	Stage    Stage           `json:"stage"`
	Answers  []string        `json:"answers"`
	Result   *Recommendation `json:"result,omitempty"`
	ErrorMsg string          `json:"error,omitempty"`
}

// Service runs vibe-finder quiz sessions. Sessions live in memory for the
// duration of the process, like the rest of the UI state.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*Session

	rec     Recommender
	catalog Catalog
	log     *slog.Logger
}

func NewService(rec Recommender, catalog Catalog, log *slog.Logger) *Service {
	return &Service{
		sessions: make(map[string]*Session),
		rec:      rec,
		catalog:  catalog,
		log:      log,
	}
}

// Questions returns the fixed quiz, in order.
func (s *Service) Questions() []Question {
	return questions()
}

// Start opens a new session at the first question.
func (s *Service) Start() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{
		ID:    uuid.NewString(),
		Stage: StageQuiz,
	}
	s.sessions[sess.ID] = sess
	return *sess
}

func (s *Service) Get(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrUnknownSession
	}
	return snapshot(sess), nil
}

// Answer records one answer. The third answer triggers the recommendation
// call; a failing call parks the session in the error stage with a message,
// ready for Retry.
func (s *Service) Answer(ctx context.Context, id, answer string) (Session, error) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return Session{}, ErrUnknownSession
	}
	if sess.Stage != StageQuiz {
		s.mu.Unlock()
		return Session{}, ErrQuizFinished
	}

	sess.Answers = append(sess.Answers, answer)
	if len(sess.Answers) < len(questions()) {
		out := snapshot(sess)
		s.mu.Unlock()
		return out, nil
	}

	sess.Stage = StageLoading
	answers := [3]string{sess.Answers[0], sess.Answers[1], sess.Answers[2]}
	s.mu.Unlock()

	rec, err := s.recommend(ctx, answers)

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess.Stage != StageLoading {
		// A Retry landed while the call was in flight; drop the stale
		// outcome and report the session as it is now.
		return snapshot(sess), nil
	}
	if err != nil {
		s.log.Error("vibe recommendation failed", slog.String("session", id), slog.Any("err", err))
		sess.Stage = StageError
		sess.ErrorMsg = "Não conseguimos encontrar sua vibe. Tente novamente."
		return snapshot(sess), nil
	}

	sess.Stage = StageResult
	sess.Result = &rec
	return snapshot(sess), nil
}

// Retry resets a failed (or finished) session back to the first question.
func (s *Service) Retry(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrUnknownSession
	}

	sess.Stage = StageQuiz
	sess.Answers = nil
	sess.Result = nil
	sess.ErrorMsg = ""
	return snapshot(sess), nil
}

func (s *Service) recommend(ctx context.Context, answers [3]string) (Recommendation, error) {
	products, err := s.catalog.List(ctx)
	if err != nil {
		return Recommendation{}, err
	}
	return s.rec.Recommend(ctx, answers, products)
}

func snapshot(sess *Session) Session {
	out := *sess
	out.Answers = append([]string(nil), sess.Answers...)
	if sess.Result != nil {
		r := *sess.Result
		out.Result = &r
	}
	return out
}

func questions() []Question {
	return []Question{
		{
			Question: "Qual a vibe do seu rolê ideal?",
			Answers: []string{
				"Festa na praia com amigos até o amanhecer.",
				"Noite tranquila em casa, jogando ou vendo série.",
				"Balada eletrônica com luzes neon e batida forte.",
			},
		},
		{
			Question: "Quando se trata de sabor, você prefere:",
			Answers: []string{
				"Uma explosão de frutas doces e tropicais.",
				"Algo refrescante e gelado, que desperta os sentidos.",
				"Um sabor clássico e ousado, com um toque diferente.",
			},
		},
		{
			Question: "Escolha uma cor que te representa:",
			Answers: []string{
				"Azul Ciano - Elétrico e vibrante.",
				"Roxo - Misterioso e profundo.",
				"Rosa Pink - Ousado e divertido.",
			},
		},
	}
}
