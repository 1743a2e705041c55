package region

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type RegionRepository interface {
	Create(ctx context.Context, req *model.RegionEntity) (*model.RegionEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.RegionEntity, error)
	GetByName(ctx context.Context, name string) (*model.RegionEntity, error)
	List(ctx context.Context, page model.Page) ([]model.RegionEntity, error)
	Update(ctx context.Context, req *model.RegionEntity) error
	Delete(ctx context.Context, id uint64) error
}

func NewRegionRepository(conn *sqlx.DB) RegionRepository {
	return &SQL{conn: conn}
}

const (
	insertRegionQuery    = `INSERT INTO regions (name) VALUES (?)`
	getRegionByIDQuery   = `SELECT id, name FROM regions WHERE id = ?`
	getRegionByNameQuery = `SELECT id, name FROM regions WHERE name = ?`
	listRegionsQuery     = `SELECT id, name FROM regions ORDER BY id LIMIT ? OFFSET ?`
	updateRegionQuery    = `UPDATE regions SET name = ? WHERE id = ?`
	deleteRegionQuery    = `DELETE FROM regions WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.RegionEntity) (*model.RegionEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertRegionQuery, data.Name)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.RegionEntity, error) {
	return s.getOne(ctx, getRegionByIDQuery, id)
}

func (s *SQL) GetByName(ctx context.Context, name string) (*model.RegionEntity, error) {
	return s.getOne(ctx, getRegionByNameQuery, name)
}

func (s *SQL) getOne(ctx context.Context, query string, arg any) (*model.RegionEntity, error) {
	var entity model.RegionEntity
	if err := s.conn.GetContext(ctx, &entity, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, page model.Page) ([]model.RegionEntity, error) {
	items := make([]model.RegionEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, listRegionsQuery, page.Limit, page.Offset); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) Update(ctx context.Context, data *model.RegionEntity) error {
	_, err := s.conn.ExecContext(ctx, updateRegionQuery, data.Name, data.ID)
	return err
}

// Delete removes the region and, by cascade, its users and everything
// they own.
func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteRegionQuery, id)
	return err
}
