package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rbeaulieu03/portfolio-simulator/internal/db/models/postgres/public/model"
	. "github.com/rbeaulieu03/portfolio-simulator/internal/db/models/postgres/public/table"

	"github.com/google/uuid"
)

// SimulationRequestRepository stores request history as flat records -
// the inputs plus headline outputs of each comparison. The engine
// never reads these back; they exist for the surrounding app.
type SimulationRequestRepository interface {
	Add(db *sql.DB, sr model.SimulationRequest) (*model.SimulationRequest, error)
	List(db *sql.DB, limit int64) ([]model.SimulationRequest, error)
}

type simulationRequestRepositoryHandler struct{}

func NewSimulationRequestRepository() SimulationRequestRepository {
	return simulationRequestRepositoryHandler{}
}

func (h simulationRequestRepositoryHandler) Add(db *sql.DB, sr model.SimulationRequest) (*model.SimulationRequest, error) {
	if sr.SimulationRequestID == uuid.Nil {
		sr.SimulationRequestID = uuid.New()
	}
	if sr.CreatedAt.IsZero() {
		sr.CreatedAt = time.Now().UTC()
	}

	query := SimulationRequest.
		INSERT(SimulationRequest.AllColumns).
		MODEL(sr).
		RETURNING(SimulationRequest.AllColumns)

	out := model.SimulationRequest{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert simulation request: %w", err)
	}

	return &out, nil
}

func (h simulationRequestRepositoryHandler) List(db *sql.DB, limit int64) ([]model.SimulationRequest, error) {
	query := SimulationRequest.
		SELECT(SimulationRequest.AllColumns).
		ORDER_BY(SimulationRequest.CreatedAt.DESC()).
		LIMIT(limit)

	out := []model.SimulationRequest{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulation requests: %w", err)
	}

	return out, nil
}
