package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/subway/internal/platform/grpc/pagination"
	"github.com/louisbranch/subway/internal/services/subway/domain"
	"github.com/louisbranch/subway/internal/services/subway/storage"
)

const selectSections = `SELECT s.id, s.line_id, s.distance,
        up.id, up.name, down.id, down.name
   FROM sections s
   JOIN stations up ON up.id = s.up_station_id
   JOIN stations down ON down.id = s.down_station_id`

type lineRow struct {
	id        int64
	name      string
	color     string
	createdAt int64
	updatedAt int64
}

// CreateLine inserts the line and its initial path.
func (s *Store) CreateLine(ctx context.Context, line domain.Line) (domain.Line, error) {
	if err := s.ready(ctx); err != nil {
		return domain.Line{}, err
	}
	if line.ID != 0 {
		return domain.Line{}, fmt.Errorf("line %d is already stored", line.ID)
	}

	now := s.timestamp()
	var created domain.Line
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO lines (name, color, created_at, updated_at) VALUES (?, ?, ?, ?)`,
			line.Name, line.Color, toMillis(now), toMillis(now),
		)
		if err != nil {
			return fmt.Errorf("create line: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("create line id: %w", err)
		}
		for position, section := range line.Sections() {
			if err := insertSection(ctx, tx, id, position, section); err != nil {
				return err
			}
		}
		created, err = loadLine(ctx, tx, id)
		return err
	})
	if err != nil {
		return domain.Line{}, err
	}
	return created, nil
}

// GetLine returns one line with its ordered path.
func (s *Store) GetLine(ctx context.Context, id int64) (domain.Line, error) {
	if err := s.ready(ctx); err != nil {
		return domain.Line{}, err
	}
	var line domain.Line
	err := s.inReadTx(ctx, func(tx *sql.Tx) error {
		var err error
		line, err = loadLine(ctx, tx, id)
		return err
	})
	if err != nil {
		return domain.Line{}, err
	}
	return line, nil
}

// ListLines returns one keyset page of lines matching query.Filter.
func (s *Store) ListLines(ctx context.Context, query storage.LineQuery) (storage.LinePage, error) {
	if err := s.ready(ctx); err != nil {
		return storage.LinePage{}, err
	}
	if query.PageSize <= 0 {
		return storage.LinePage{}, fmt.Errorf("page size must be greater than zero")
	}

	var page storage.LinePage
	err := s.inReadTx(ctx, func(tx *sql.Tx) error {
		var err error
		page, err = listLines(ctx, tx, query)
		return err
	})
	if err != nil {
		return storage.LinePage{}, err
	}
	return page, nil
}

func listLines(ctx context.Context, q querier, query storage.LineQuery) (storage.LinePage, error) {
	where := "l.id > ?"
	args := []any{query.AfterID}
	if !query.Filter.Empty() {
		where += " AND " + query.Filter.Clause
		args = append(args, query.Filter.Params...)
	}
	args = append(args, query.PageSize+1)

	rows, err := q.QueryContext(ctx,
		`SELECT l.id, l.name, l.color, l.created_at, l.updated_at
		   FROM lines l
		  WHERE `+where+`
		  ORDER BY l.id ASC
		  LIMIT ?`,
		args...,
	)
	if err != nil {
		return storage.LinePage{}, fmt.Errorf("list lines: %w", err)
	}
	var found []lineRow
	for rows.Next() {
		var row lineRow
		if err := rows.Scan(&row.id, &row.name, &row.color, &row.createdAt, &row.updatedAt); err != nil {
			rows.Close()
			return storage.LinePage{}, fmt.Errorf("list lines: %w", err)
		}
		found = append(found, row)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return storage.LinePage{}, fmt.Errorf("list lines: %w", err)
	}

	page := storage.LinePage{}
	if len(found) > query.PageSize {
		found = found[:query.PageSize]
		page.NextPageToken = pagination.FormatIDToken(found[len(found)-1].id)
	}
	if len(found) == 0 {
		page.Lines = []domain.Line{}
		return page, nil
	}

	ids := make([]int64, len(found))
	for i, row := range found {
		ids[i] = row.id
	}
	sectionsByLine, err := loadSections(ctx, q, ids...)
	if err != nil {
		return storage.LinePage{}, err
	}

	page.Lines = make([]domain.Line, 0, len(found))
	for _, row := range found {
		line, err := row.restore(sectionsByLine[row.id])
		if err != nil {
			return storage.LinePage{}, err
		}
		page.Lines = append(page.Lines, line)
	}
	return page, nil
}

// UpdateLine applies mutate to the stored line and persists the difference.
func (s *Store) UpdateLine(ctx context.Context, id int64, mutate func(*domain.Line) error) (domain.Line, error) {
	if err := s.ready(ctx); err != nil {
		return domain.Line{}, err
	}
	if mutate == nil {
		return domain.Line{}, fmt.Errorf("mutation is required")
	}

	var updated domain.Line
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		line, err := loadLine(ctx, tx, id)
		if err != nil {
			return err
		}
		before := make(map[int64]struct{}, len(line.Sections()))
		for _, section := range line.Sections() {
			before[section.ID] = struct{}{}
		}

		if err := mutate(&line); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE lines SET name = ?, color = ?, updated_at = ? WHERE id = ?`,
			line.Name, line.Color, toMillis(s.timestamp()), id,
		); err != nil {
			return fmt.Errorf("update line: %w", err)
		}

		after := line.Sections()
		for _, section := range after {
			delete(before, section.ID)
		}
		for sectionID := range before {
			if _, err := tx.ExecContext(ctx, `DELETE FROM sections WHERE id = ? AND line_id = ?`, sectionID, id); err != nil {
				return fmt.Errorf("delete section: %w", err)
			}
		}
		for position, section := range after {
			if section.ID == 0 {
				if err := insertSection(ctx, tx, id, position, section); err != nil {
					return err
				}
				continue
			}
			if _, err := tx.ExecContext(ctx,
				`UPDATE sections SET position = ? WHERE id = ? AND line_id = ?`,
				position, section.ID, id,
			); err != nil {
				return fmt.Errorf("update section position: %w", err)
			}
		}

		updated, err = loadLine(ctx, tx, id)
		return err
	})
	if err != nil {
		return domain.Line{}, err
	}
	return updated, nil
}

// DeleteLine removes the line's sections and then the line.
func (s *Store) DeleteLine(ctx context.Context, id int64) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := loadLineRow(ctx, tx, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM sections WHERE line_id = ?`, id); err != nil {
			return fmt.Errorf("delete line sections: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM lines WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete line: %w", err)
		}
		return nil
	})
}

func insertSection(ctx context.Context, tx *sql.Tx, lineID int64, position int, section domain.Section) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO sections (line_id, up_station_id, down_station_id, distance, position)
		 VALUES (?, ?, ?, ?, ?)`,
		lineID, section.UpStation.ID, section.DownStation.ID, section.Distance, position,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("insert section: %w", err)
	}
	return nil
}

func loadLine(ctx context.Context, q querier, id int64) (domain.Line, error) {
	row, err := loadLineRow(ctx, q, id)
	if err != nil {
		return domain.Line{}, err
	}
	sections, err := loadSections(ctx, q, id)
	if err != nil {
		return domain.Line{}, err
	}
	return row.restore(sections[id])
}

func loadLineRow(ctx context.Context, q querier, id int64) (lineRow, error) {
	var row lineRow
	err := q.QueryRowContext(ctx,
		`SELECT id, name, color, created_at, updated_at FROM lines WHERE id = ?`, id,
	).Scan(&row.id, &row.name, &row.color, &row.createdAt, &row.updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return lineRow{}, storage.ErrNotFound
		}
		return lineRow{}, fmt.Errorf("get line: %w", err)
	}
	return row, nil
}

// loadSections groups the sections of lineIDs by line. Order within a group
// follows position, though RestoreLine does not rely on it.
func loadSections(ctx context.Context, q querier, lineIDs ...int64) (map[int64][]domain.Section, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(lineIDs)), ",")
	args := make([]any, len(lineIDs))
	for i, id := range lineIDs {
		args[i] = id
	}

	rows, err := q.QueryContext(ctx,
		selectSections+` WHERE s.line_id IN (`+placeholders+`) ORDER BY s.line_id, s.position`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("load sections: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]domain.Section, len(lineIDs))
	for rows.Next() {
		var section domain.Section
		if err := rows.Scan(
			&section.ID,
			&section.LineID,
			&section.Distance,
			&section.UpStation.ID,
			&section.UpStation.Name,
			&section.DownStation.ID,
			&section.DownStation.Name,
		); err != nil {
			return nil, fmt.Errorf("load sections: %w", err)
		}
		out[section.LineID] = append(out[section.LineID], section)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load sections: %w", err)
	}
	return out, nil
}

func (r lineRow) restore(sections []domain.Section) (domain.Line, error) {
	return domain.RestoreLine(r.id, r.name, r.color, sections, fromMillis(r.createdAt), fromMillis(r.updatedAt))
}
