package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/louisbranch/subway/internal/platform/grpc/pagination"
	"github.com/louisbranch/subway/internal/services/subway/domain"
	"github.com/louisbranch/subway/internal/services/subway/storage"
)

// CreateStation inserts a station and returns it with its id.
func (s *Store) CreateStation(ctx context.Context, station domain.Station) (domain.Station, error) {
	if err := s.ready(ctx); err != nil {
		return domain.Station{}, err
	}
	station, err := domain.NewStation(station.Name)
	if err != nil {
		return domain.Station{}, err
	}

	result, err := s.sqlDB.ExecContext(ctx, `INSERT INTO stations (name) VALUES (?)`, station.Name)
	if err != nil {
		return domain.Station{}, fmt.Errorf("create station: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return domain.Station{}, fmt.Errorf("create station id: %w", err)
	}
	station.ID = id
	return station, nil
}

// GetStation returns one station by id.
func (s *Store) GetStation(ctx context.Context, id int64) (domain.Station, error) {
	if err := s.ready(ctx); err != nil {
		return domain.Station{}, err
	}
	return getStation(ctx, s.sqlDB, id)
}

// ListStations returns stations with id greater than afterID.
func (s *Store) ListStations(ctx context.Context, pageSize int, afterID int64) (storage.StationPage, error) {
	if err := s.ready(ctx); err != nil {
		return storage.StationPage{}, err
	}
	if pageSize <= 0 {
		return storage.StationPage{}, fmt.Errorf("page size must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, name FROM stations WHERE id > ? ORDER BY id ASC LIMIT ?`,
		afterID, pageSize+1,
	)
	if err != nil {
		return storage.StationPage{}, fmt.Errorf("list stations: %w", err)
	}
	defer rows.Close()

	page := storage.StationPage{Stations: make([]domain.Station, 0, pageSize)}
	for rows.Next() {
		var station domain.Station
		if err := rows.Scan(&station.ID, &station.Name); err != nil {
			return storage.StationPage{}, fmt.Errorf("list stations: %w", err)
		}
		page.Stations = append(page.Stations, station)
	}
	if err := rows.Err(); err != nil {
		return storage.StationPage{}, fmt.Errorf("list stations: %w", err)
	}
	if len(page.Stations) > pageSize {
		page.NextPageToken = pagination.FormatIDToken(page.Stations[pageSize-1].ID)
		page.Stations = page.Stations[:pageSize]
	}
	return page, nil
}

// DeleteStation removes a station no section refers to.
func (s *Store) DeleteStation(ctx context.Context, id int64) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := getStation(ctx, tx, id); err != nil {
			return err
		}
		var used int
		err := tx.QueryRowContext(ctx,
			`SELECT 1 FROM sections WHERE up_station_id = ? OR down_station_id = ? LIMIT 1`,
			id, id,
		).Scan(&used)
		switch {
		case err == nil:
			return storage.ErrInUse
		case !errors.Is(err, sql.ErrNoRows):
			return fmt.Errorf("check station use: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM stations WHERE id = ?`, id); err != nil {
			if isForeignKeyViolation(err) {
				return storage.ErrInUse
			}
			return fmt.Errorf("delete station: %w", err)
		}
		return nil
	})
}

func getStation(ctx context.Context, q querier, id int64) (domain.Station, error) {
	var station domain.Station
	err := q.QueryRowContext(ctx, `SELECT id, name FROM stations WHERE id = ?`, id).Scan(&station.ID, &station.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Station{}, storage.ErrNotFound
		}
		return domain.Station{}, fmt.Errorf("get station: %w", err)
	}
	return station, nil
}
