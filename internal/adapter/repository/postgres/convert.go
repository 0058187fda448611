package postgres

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/rishad190/bhaiyaPos-sub001/internal/domain"
)

const pgErrUniqueViolation = "23505"

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func optionalTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return timeToPgTimestamptz(t)
}

func optionalText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

func timeToPgDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), Valid: true}
}

// stringToPgDate accepts any date layout the domain accepts.
func stringToPgDate(s string) (pgtype.Date, error) {
	t, err := domain.ParseDate(s)
	if err != nil {
		return pgtype.Date{}, err
	}
	return timeToPgDate(t), nil
}

func pgDateToString(d pgtype.Date) string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(domain.DateLayout)
}

type colorRow struct {
	Color    string          `json:"color"`
	Quantity decimal.Decimal `json:"quantity"`
}

func encodeColors(colors []domain.ColorQuantity) ([]byte, error) {
	rows := make([]colorRow, 0, len(colors))
	for _, c := range colors {
		rows = append(rows, colorRow{Color: c.Color, Quantity: c.Quantity})
	}
	return json.Marshal(rows)
}

func decodeColors(data []byte) ([]domain.ColorQuantity, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var rows []colorRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode batch colors: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	colors := make([]domain.ColorQuantity, 0, len(rows))
	for _, r := range rows {
		colors = append(colors, domain.ColorQuantity{Color: r.Color, Quantity: r.Quantity})
	}
	return colors, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation
}
