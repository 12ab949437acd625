package event

// ============================================================
// QUERY/FILTER RULES
// ============================================================

// OrderClause trả về ORDER BY direction cho category filter
//
// UX RULE (deliberate, phải giữ nguyên):
// Category filter couple với sort direction:
// - "Upcoming" => start_date ASC  (event gần nhất lên đầu)
// - "Past"     => start_date DESC (event mới diễn ra lên đầu)
// - không filter => start_date DESC
func OrderClause(category string) string {
	if category == CategoryUpcoming {
		return "start_date ASC"
	}
	return "start_date DESC"
}
