package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByIssuedAt = "issued_at"
	orderBySeverity = "severity"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByIssuedAt: "issued_at DESC",
	orderBySeverity: `array_position(ARRAY['critical','high','medium','low'], severity), issued_at DESC`,
}

const defaultOrderBy = "issued_at DESC"

const baseAlertsSelect = `SELECT id, type, severity, title, description,
	location_name, latitude, longitude, radius_km,
	source_station, source, metadata, issued_at, expires_at, active,
	acknowledged_at, acknowledged_by, resolved_at, resolved_by, resolution_notes
FROM alerts`

const countAlertsSelect = "SELECT COUNT(*) FROM alerts"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for an alert
// query. It returns two SQL strings (one for the data query, one for the
// count query) and the positional parameters.
func (q *AlertQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Type != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", paramIdx))
		args = append(args, *q.Type)
		paramIdx++
	}

	if q.Severity != nil {
		conditions = append(conditions, fmt.Sprintf("severity = $%d", paramIdx))
		args = append(args, *q.Severity)
		paramIdx++
	}

	if q.Active != nil {
		conditions = append(conditions, fmt.Sprintf("active = $%d", paramIdx))
		args = append(args, *q.Active)
		paramIdx++
	}

	if q.Station != nil {
		conditions = append(conditions, fmt.Sprintf("source_station = $%d", paramIdx))
		args = append(args, *q.Station)
		paramIdx++
	}

	if q.Since != nil {
		conditions = append(conditions, fmt.Sprintf("issued_at >= $%d", paramIdx))
		args = append(args, *q.Since)
		paramIdx++
	}

	if q.Box != nil {
		conditions = append(conditions, fmt.Sprintf(
			"latitude BETWEEN $%d AND $%d AND longitude BETWEEN $%d AND $%d",
			paramIdx, paramIdx+1, paramIdx+2, paramIdx+3,
		))
		args = append(args, q.Box.MinLat, q.Box.MaxLat, q.Box.MinLon, q.Box.MaxLon)
		paramIdx += 4
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	// Order by
	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	// Limit
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseAlertsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countAlertsSelect + whereClause

	return dataSQL, countSQL, args
}
