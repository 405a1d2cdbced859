package repositories

import (
	"strings"

	"gorm.io/gorm"
	"staff-roster.backend/pkg/utils"
)

// applyOrdering adds ORDER BY clauses for the requested fields, falling back
// to defaults. Each requested entry may carry a leading "-" for descending;
// names missing from allowed are ignored. table.id is appended as a tiebreak.
func applyOrdering(q *gorm.DB, table string, requested []string, allowed map[string]string, defaults []string) *gorm.DB {
	clauses := orderClauses(requested, allowed)
	if len(clauses) == 0 {
		clauses = orderClauses(defaults, allowed)
	}
	for _, c := range clauses {
		q = q.Order(c)
	}
	return q.Order(table + ".id ASC")
}

func orderClauses(fields []string, allowed map[string]string) []string {
	var out []string
	for _, f := range fields {
		f = strings.TrimSpace(f)
		dir := "ASC"
		if strings.HasPrefix(f, "-") {
			dir = "DESC"
			f = f[1:]
		}
		col, ok := allowed[f]
		if !ok {
			continue
		}
		out = append(out, col+" "+dir)
	}
	return out
}

// applySearch requires every whitespace-separated term to match at least one
// of columns, case-insensitively.
func applySearch(q *gorm.DB, search string, columns ...string) *gorm.DB {
	for _, term := range strings.Fields(search) {
		pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
		conds := make([]string, 0, len(columns))
		args := make([]interface{}, 0, len(columns))
		for _, col := range columns {
			conds = append(conds, "LOWER("+col+") LIKE ? ESCAPE '\\'")
			args = append(args, pattern)
		}
		q = q.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
	return q
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// applyPage limits the query when limit > 0.
func applyPage(q *gorm.DB, page, limit int) *gorm.DB {
	p := utils.GetPaginationParams(page, limit)
	if p.Unlimited() {
		return q
	}
	return q.Limit(p.Limit).Offset(p.CalculateOffset())
}
