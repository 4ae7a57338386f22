package room

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"moviematch/pkg/models"
)

// codeAlphabet skips the lookalike characters I/O/0/1 so codes survive
// being read out loud.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeLength = 6

const createAttempts = 5

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

func newCode() string {
	b := make([]byte, codeLength)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(b)
}

// Create inserts a new room under a freshly generated code, retrying a few
// times if the code collides with an existing one.
func (r *Repo) Create(ctx context.Context) (*models.Room, error) {
	var lastErr error
	for attempt := 0; attempt < createAttempts; attempt++ {
		room := models.Room{
			ID:   uuid.NewString(),
			Code: newCode(),
		}
		_, err := r.DB.ExecContext(ctx, `
			INSERT INTO rooms (id, code) VALUES (?, ?)
		`, room.ID, room.Code)
		if err == nil {
			return &room, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("create room: %w", lastErr)
}

// GetByCode returns (nil, nil) when no room has the given code.
func (r *Repo) GetByCode(ctx context.Context, code string) (*models.Room, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, code, created_at FROM rooms WHERE code = ?
	`, strings.ToUpper(code))

	var m models.Room
	if err := row.Scan(&m.ID, &m.Code, &m.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan room: %w", err)
	}
	return &m, nil
}

// SavePreference inserts one preference row. Zero-valued fields are stored
// as NULL so partially filled submissions stay partial.
func (r *Repo) SavePreference(ctx context.Context, roomID string, p models.Preference) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO preferences (id, room_id, genre, language, max_runtime, min_rating)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		uuid.NewString(),
		roomID,
		nullString(p.Genre),
		nullString(p.Language),
		nullInt(p.MaxRuntime),
		nullFloat(p.MinRating),
	)
	if err != nil {
		return fmt.Errorf("insert preference: %w", err)
	}
	return nil
}

// ListPreferences returns a room's preferences in submission order.
// rowid is the insertion-ordered key; created_at only has one-second
// resolution and ids are random, so neither can order same-second rows.
func (r *Repo) ListPreferences(ctx context.Context, roomID string) ([]models.Preference, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, room_id, genre, language, max_runtime, min_rating, created_at
		FROM preferences
		WHERE room_id = ?
		ORDER BY rowid ASC
	`, roomID)
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}
	defer rows.Close()

	var out []models.Preference
	for rows.Next() {
		var (
			p          models.Preference
			genre      sql.NullString
			language   sql.NullString
			maxRuntime sql.NullInt64
			minRating  sql.NullFloat64
		)
		if err := rows.Scan(&p.ID, &p.RoomID, &genre, &language, &maxRuntime, &minRating, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan preference: %w", err)
		}
		p.Genre = genre.String
		p.Language = language.String
		p.MaxRuntime = int(maxRuntime.Int64)
		p.MinRating = minRating.Float64
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullInt(n int) any {
	if n == 0 {
		return nil
	}
	return n
}

func nullFloat(f float64) any {
	if f == 0 {
		return nil
	}
	return f
}
