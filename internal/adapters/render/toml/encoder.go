package toml

import (
	"fmt"
	"time"

	"github.com/bnema/logdata/internal/application"
	"github.com/bnema/logdata/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
)

// Encode renders report as a versioned TOML document.
func Encode(report application.Report) ([]byte, error) {
	data, err := toml.Marshal(toSchema(report))
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}

	return data, nil
}

func toSchema(report application.Report) reportSchema {
	users := make([]userSchema, 0, len(report.Rows))
	for _, row := range report.Rows {
		users = append(users, userSchema{
			Username: row.Username,
			Seconds:  row.Seconds,
			Duration: domain.DisplayDuration(row.Seconds),
			Known:    row.Known,
		})
	}

	schema := reportSchema{
		Version: currentSchemaVersion,
		Mode:    string(report.Mode),
		AsOf:    formatTime(report.AsOf),
		Users:   users,
	}

	if report.Total != nil {
		schema.Total = &totalSchema{
			Seconds:  *report.Total,
			Duration: domain.DisplayDuration(*report.Total),
		}
	}

	return schema
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
