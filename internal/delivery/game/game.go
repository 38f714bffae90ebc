package game

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"quadratum/internal/bootstrap"
	domain "quadratum/internal/domain/game"
	errs "quadratum/internal/errors"
	"quadratum/internal/httpresponse"
	gameuc "quadratum/internal/usecase/game"
	"quadratum/internal/utils"
)

type StartRequest struct {
	FirstPlayer string `json:"first_player"`
}

type MoveRequest struct {
	Index *int `json:"index"`
}

type MoveResponse struct {
	Accepted bool         `json:"accepted"`
	State    domain.State `json:"state"`
}

type GameHandler struct {
	cfg     bootstrap.Config
	log     *zap.SugaredLogger
	session *gameuc.Session
	hub     *Hub
}

func NewGameHandler(cfg bootstrap.Config, log *zap.SugaredLogger, session *gameuc.Session, hub *Hub) *GameHandler {
	return &GameHandler{
		cfg:     cfg,
		log:     log,
		session: session,
		hub:     hub,
	}
}

func (g *GameHandler) Routes(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/start", g.HandleStartGame)
		r.Post("/move", g.HandleMove)
		r.Get("/state", g.HandleState)
		r.Get("/events", g.hub.ServeWS)
	})
}

func (g *GameHandler) HandleStartGame(w http.ResponseWriter, r *http.Request) {
	var req StartRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		g.log.Errorf("start game: %v", err)
		httpresponse.WriteErrorResponse(w, http.StatusBadRequest, httpresponse.MALFORMEDJSON_errorDesc)
		return
	}
	if req.FirstPlayer == "" {
		req.FirstPlayer = g.cfg.Player1Name
	}

	state, err := g.session.Start(req.FirstPlayer)
	if err != nil {
		g.writeError(w, err)
		return
	}

	g.log.Infof("game %s started, %s moves first", state.GameID, req.FirstPlayer)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, state)
}

func (g *GameHandler) HandleMove(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		g.log.Errorf("move: %v", err)
		httpresponse.WriteErrorResponse(w, http.StatusBadRequest, httpresponse.MALFORMEDJSON_errorDesc)
		return
	}
	if req.Index == nil {
		httpresponse.WriteErrorResponse(w, http.StatusBadRequest, "index is required")
		return
	}

	accepted, state, err := g.session.Submit(*req.Index)
	if err != nil {
		g.writeError(w, err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, MoveResponse{
		Accepted: accepted,
		State:    state,
	})
}

func (g *GameHandler) HandleState(w http.ResponseWriter, r *http.Request) {
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, g.session.State())
}

func (g *GameHandler) writeError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		g.log.Errorf("request failed: %v", asInternal(err))
		httpresponse.WriteInternalErrorResponse(w)
		return
	}
	g.log.Infof("request rejected: %v", err)
	httpresponse.WriteErrorResponse(w, status, err.Error())
}

// asInternal wraps err in ErrInternal unless it already is one.
func asInternal(err error) error {
	if errors.Is(err, errs.ErrInternal) {
		return err
	}
	return fmt.Errorf("%w: %w", errs.ErrInternal, err)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrUnknownPlayer):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrIndexOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrGameNotStarted),
		errors.Is(err, errs.ErrGameOver),
		errors.Is(err, errs.ErrNotHumanTurn):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
