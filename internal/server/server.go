package server

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/derekprior/birdie/internal/schedule"
	"github.com/derekprior/birdie/internal/store"
)

type scheduleRequest struct {
	Players   []string `json:"players"`
	Courts    int      `json:"courts"`
	MatchType string   `json:"matchType"`
}

type matchResponse struct {
	ID    string   `json:"id"`
	TeamA []string `json:"teamA"`
	TeamB []string `json:"teamB"`
}

type roundResponse struct {
	ID        string          `json:"id"`
	Matches   []matchResponse `json:"matches"`
	Resting   []string        `json:"resting"`
	Completed bool            `json:"completed"`
}

type scheduleResponse struct {
	ScheduleID string          `json:"scheduleId"`
	Rounds     []roundResponse `json:"rounds"`
	Warning    string          `json:"warning,omitempty"`
}

// Router wires the schedule API.
func Router(st *store.Store, ids schedule.IDSource, log *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.POST("/schedules", createSchedule(st, ids, log))
	api.GET("/schedules/:id", getSchedule(st, log))
	api.POST("/schedules/:id/rounds/:roundId/toggle", toggleRound(st, log))
	return r
}

// POST /api/schedules
func createSchedule(st *store.Store, ids schedule.IDSource, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req scheduleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": "invalid request body"})
			return
		}

		mt, err := schedule.ParseMatchType(req.MatchType)
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		res, err := schedule.Generate(req.Players, req.Courts, mt, ids)
		if err != nil {
			if errors.Is(err, schedule.ErrInvalidPlayers) || errors.Is(err, schedule.ErrInvalidCourts) {
				c.JSON(400, gin.H{"error": err.Error()})
				return
			}
			log.WithError(err).Error("schedule generation failed")
			c.JSON(500, gin.H{"error": "internal error"})
			return
		}

		sc := &store.Schedule{ID: ids.NewID(), Rounds: res.Rounds, Warning: res.Warning}
		if err := st.Put(sc); err != nil {
			log.WithError(err).Error("storing schedule failed")
			c.JSON(500, gin.H{"error": "internal error"})
			return
		}

		log.WithFields(logrus.Fields{
			"schedule": sc.ID,
			"rounds":   len(sc.Rounds),
		}).Info("schedule created")
		c.JSON(201, toResponse(sc))
	}
}

// GET /api/schedules/:id
func getSchedule(st *store.Store, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, err := st.Get(c.Param("id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.WithError(err).Warn("schedule lookup missed")
				c.JSON(404, gin.H{"error": "schedule not found"})
				return
			}
			log.WithError(err).Error("loading schedule failed")
			c.JSON(500, gin.H{"error": "internal error"})
			return
		}
		c.JSON(200, toResponse(sc))
	}
}

// POST /api/schedules/:id/rounds/:roundId/toggle
func toggleRound(st *store.Store, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		round, err := st.ToggleRound(c.Param("id"), c.Param("roundId"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.WithError(err).Warn("round toggle missed")
				c.JSON(404, gin.H{"error": err.Error()})
				return
			}
			log.WithError(err).Error("toggling round failed")
			c.JSON(500, gin.H{"error": "internal error"})
			return
		}
		c.JSON(200, toRound(round))
	}
}

func toResponse(sc *store.Schedule) scheduleResponse {
	resp := scheduleResponse{
		ScheduleID: sc.ID,
		Warning:    sc.Warning,
		Rounds:     make([]roundResponse, 0, len(sc.Rounds)),
	}
	for _, r := range sc.Rounds {
		resp.Rounds = append(resp.Rounds, toRound(r))
	}
	return resp
}

func toRound(r schedule.Round) roundResponse {
	out := roundResponse{
		ID:        r.ID,
		Resting:   r.Resting,
		Completed: r.Completed,
		Matches:   make([]matchResponse, 0, len(r.Matches)),
	}
	if out.Resting == nil {
		out.Resting = []string{}
	}
	for _, m := range r.Matches {
		out.Matches = append(out.Matches, matchResponse{
			ID:    m.ID,
			TeamA: m.TeamA.Players,
			TeamB: m.TeamB.Players,
		})
	}
	return out
}
