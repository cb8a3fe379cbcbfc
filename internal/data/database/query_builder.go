// Package database provides a small composable SQL predicate builder.
//
// Conditions are immutable value objects combined into a per-request tree
// (AND at the top level, OR groups below) and handed whole to the query
// executor. This replaces mutating a shared where-clause across branches,
// which is where order-of-mutation bugs come from.
package database

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
)

// ConditionType enumerates the supported comparison operators.
type ConditionType string

const (
	Equal              ConditionType = "="
	NotEqual           ConditionType = "!="
	GreaterThan        ConditionType = ">"
	LessThan           ConditionType = "<"
	LessThanOrEqual    ConditionType = "<="
	GreaterThanOrEqual ConditionType = ">="
	ILike              ConditionType = "ILIKE"
	Any                ConditionType = "ANY"
	Or                 ConditionType = "OR"
	Custom             ConditionType = "CUSTOM"

	defaultLimit  = -1
	defaultOffset = -1
)

// Condition is one node of the predicate tree. Leaf nodes compare a field
// against a value; Or nodes group children; Custom nodes carry raw SQL.
type Condition struct {
	Field    string
	Type     ConditionType
	Value    any
	group    []Condition
	rawQuery *string
}

// WhereCond builds a leaf comparison condition.
func WhereCond(field string, condType ConditionType, value any) Condition {
	if condType == Custom || condType == Or {
		//nolint:forbidigo // panic prevents misuse; use WhereRawCond / OrCond instead.
		panic("use WhereRawCond for Custom and OrCond for Or conditions")
	}
	return Condition{
		Field: field,
		Type:  condType,
		Value: value,
	}
}

// WhereRawCond builds a raw SQL condition with positional params ($1, $2, ...)
// local to the fragment; they are renumbered when the query is assembled.
func WhereRawCond(rawQuery string, params ...any) Condition {
	queryStr := rawQuery
	var value any = params
	if len(params) == 0 {
		value = nil
	} else if len(params) == 1 {
		value = params[0]
	}
	return Condition{
		Type:     Custom,
		rawQuery: &queryStr,
		Value:    value,
	}
}

// OrCond groups conditions with OR, wrapped in parentheses. Empty or
// single-element groups collapse to their obvious forms.
func OrCond(conds ...Condition) Condition {
	return Condition{
		Type:  Or,
		group: conds,
	}
}

// EscapeLike escapes LIKE/ILIKE metacharacters in a user-supplied keyword so
// it matches literally inside a %...% pattern.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// ListQueryOptions describes one list or count query over a single table.
type ListQueryOptions struct {
	Table      string
	Columns    []string
	CountOnly  bool
	Conditions []Condition
	OrderBy    string
	OrderDir   string
	TieBreak   string // secondary sort column, always ascending
	Limit      int
	Offset     int
}

// ListQueryOption mutates ListQueryOptions during construction.
type ListQueryOption func(*ListQueryOptions)

// NewListQueryOptions builds options for a query against table.
func NewListQueryOptions(table string, opts ...ListQueryOption) *ListQueryOptions {
	options := &ListQueryOptions{
		Table:      table,
		Columns:    []string{},
		Conditions: []Condition{},
		Limit:      defaultLimit,
		Offset:     defaultOffset,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithColumns sets the columns to select.
func WithColumns(cols ...string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Columns = cols
	}
}

// WithCondition adds a single condition.
func WithCondition(cond Condition) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Conditions = append(o.Conditions, cond)
	}
}

// WithConditions sets the entire list of conditions.
func WithConditions(conds ...Condition) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Conditions = conds
	}
}

// WithOrderBy sets the ordering column and direction.
func WithOrderBy(column, direction string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.OrderBy = column
		o.OrderDir = direction
	}
}

// WithTieBreak sets a secondary ascending sort column so pagination stays
// stable across repeated calls when primary sort values are equal.
func WithTieBreak(column string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.TieBreak = column
	}
}

// WithLimit sets the limit. Accepts 0.
func WithLimit(limit int) ListQueryOption {
	return func(o *ListQueryOptions) {
		if limit >= 0 {
			o.Limit = limit
		}
	}
}

// WithOffset sets the offset. Accepts 0.
func WithOffset(offset int) ListQueryOption {
	return func(o *ListQueryOptions) {
		if offset >= 0 {
			o.Offset = offset
		}
	}
}

// WithCountOnly sets the query to count only.
func WithCountOnly() ListQueryOption {
	return func(o *ListQueryOptions) {
		o.CountOnly = true
	}
}

// sanitizeIdentifier quotes a single identifier.
func sanitizeIdentifier(ident string) string {
	return pgx.Identifier{ident}.Sanitize()
}

// sanitizeQualifiedIdentifier quotes identifiers like "table.column".
func sanitizeQualifiedIdentifier(ident string) string {
	parts := strings.Split(ident, ".")
	return pgx.Identifier(parts).Sanitize()
}

// BuildListQuery constructs a SQL query string and arguments from options,
// sanitizing identifiers. The same condition set drives both the page query
// and the CountOnly query, so a count always reflects the page's predicate.
//
// Example:
//
//	options := NewListQueryOptions("jobs",
//		WithColumns("id", "title", "status"),
//		WithCondition(WhereCond("requester_id", Equal, callerID)),
//		WithCondition(OrCond(
//			WhereCond("status", Equal, "open"),
//			WhereCond("matched_tutor_id", Equal, callerID),
//		)),
//		WithOrderBy("created_at", "DESC"),
//		WithTieBreak("id"),
//		WithLimit(10),
//		WithOffset(0),
//	)
//	query, args := BuildListQuery(options)
func BuildListQuery(options *ListQueryOptions) (string, []any) {
	if options == nil {
		return "", nil
	}

	var query strings.Builder
	query.WriteString(buildSelectClause(options))
	query.WriteString("FROM ")
	query.WriteString(sanitizeIdentifier(options.Table))

	whereClause, whereArgs, nextParamCount := buildWhereClause(options.Conditions, 1)
	if whereClause != "" {
		query.WriteString(" ")
		query.WriteString(whereClause)
	}

	if options.CountOnly {
		return query.String(), whereArgs
	}

	paginationOrderClause, finalArgs := buildPaginationAndOrderClause(options, nextParamCount, whereArgs)
	if paginationOrderClause != "" {
		query.WriteString(paginationOrderClause)
	}

	return query.String(), finalArgs
}

// buildSelectClause generates the SELECT part of the query with sanitized columns.
func buildSelectClause(options *ListQueryOptions) string {
	if options.CountOnly {
		return "SELECT COUNT(*) "
	}
	if len(options.Columns) == 0 {
		return "SELECT * "
	}

	processed := make([]string, len(options.Columns))
	for i, col := range options.Columns {
		if strings.Contains(col, ".") {
			processed[i] = sanitizeQualifiedIdentifier(col)
			continue
		}
		processed[i] = sanitizeIdentifier(col)
	}
	return fmt.Sprintf("SELECT %s ", strings.Join(processed, ", "))
}

// buildPaginationAndOrderClause generates ORDER BY, LIMIT, OFFSET parts with
// a sanitized OrderBy column and validated OrderDir.
func buildPaginationAndOrderClause(
	options *ListQueryOptions,
	startParamIndex int,
	initialArgs []any,
) (string, []any) {
	var clause strings.Builder
	args := initialArgs
	paramCount := startParamIndex

	if options.OrderBy != "" {
		clause.WriteString(" ORDER BY ")
		clause.WriteString(sanitizeQualifiedIdentifier(options.OrderBy))
		upperOrderDir := strings.ToUpper(options.OrderDir)
		if upperOrderDir == "ASC" || upperOrderDir == "DESC" {
			clause.WriteString(" ")
			clause.WriteString(upperOrderDir)
		}
		if options.TieBreak != "" && options.TieBreak != options.OrderBy {
			clause.WriteString(", ")
			clause.WriteString(sanitizeQualifiedIdentifier(options.TieBreak))
			clause.WriteString(" ASC")
		}
	}

	if options.Limit != defaultLimit {
		clause.WriteString(fmt.Sprintf(" LIMIT $%d", paramCount))
		args = append(args, options.Limit)
		paramCount++
	}
	if options.Offset != defaultOffset {
		clause.WriteString(fmt.Sprintf(" OFFSET $%d", paramCount))
		args = append(args, options.Offset)
	}

	return clause.String(), args
}

func handleStandardCondition(
	cond Condition,
	sanitizedField string,
	paramCount int,
) (string, []any, int) {
	conditionStr := fmt.Sprintf("%s %s $%d", sanitizedField, cond.Type, paramCount)
	args := []any{cond.Value}
	return conditionStr, args, paramCount + 1
}

func handleAnyCondition(
	cond Condition,
	sanitizedField string,
	paramCount int,
) (string, []any, int) {
	// Accept any slice type via reflection
	rv := reflect.ValueOf(cond.Value)
	if rv.Kind() != reflect.Slice || rv.Len() == 0 {
		return "", []any{}, paramCount
	}

	placeholders := make([]string, rv.Len())
	args := make([]any, rv.Len())
	currentParam := paramCount
	for i := range rv.Len() {
		placeholders[i] = fmt.Sprintf("$%d", currentParam)
		args[i] = rv.Index(i).Interface()
		currentParam++
	}
	conditionStr := fmt.Sprintf(
		"%s = ANY (ARRAY[%s])",
		sanitizedField,
		strings.Join(placeholders, ", "),
	)
	return conditionStr, args, currentParam
}

func handleOrCondition(cond Condition, paramCount int) (string, []any, int) {
	parts := make([]string, 0, len(cond.group))
	args := []any{}
	currentParam := paramCount

	for _, child := range cond.group {
		childStr, childArgs, nextParam := processCondition(child, currentParam)
		if childStr == "" {
			continue
		}
		parts = append(parts, childStr)
		args = append(args, childArgs...)
		currentParam = nextParam
	}

	switch len(parts) {
	case 0:
		return "", []any{}, paramCount
	case 1:
		return parts[0], args, currentParam
	default:
		return "(" + strings.Join(parts, " OR ") + ")", args, currentParam
	}
}

func handleCustomCondition(cond Condition, paramCount int) (string, []any, int) {
	args := []any{}
	if cond.rawQuery == nil || *cond.rawQuery == "" {
		return "", []any{}, paramCount
	}
	conditionStr := *cond.rawQuery

	if cond.Value == nil {
		return conditionStr, args, paramCount
	}

	// NOTE: RawQuery itself is NOT sanitized here.
	// Normalize to slice: treat any []any as-is, otherwise wrap single value
	var params []any
	if paramSlice, ok := cond.Value.([]any); ok {
		params = paramSlice
	} else {
		params = []any{cond.Value}
	}

	// Renumber fragment-local placeholders, handling $10 vs $1 correctly and
	// letting a fragment reference the same parameter more than once.
	currentParam := paramCount
	re := regexp.MustCompile(`\$(\d+)`)
	idxMap := make(map[int]int)
	conditionStr = re.ReplaceAllStringFunc(conditionStr, func(m string) string {
		n, err := strconv.Atoi(m[1:])
		if err != nil {
			return m
		}
		if _, ok := idxMap[n]; !ok {
			if n < 1 || n > len(params) {
				// Invalid placeholder index, skip replacement
				return m
			}
			idxMap[n] = currentParam
			args = append(args, params[n-1])
			currentParam++
		}
		return fmt.Sprintf("$%d", idxMap[n])
	})

	return conditionStr, args, currentParam
}

// processCondition renders a single condition node and returns the SQL
// fragment, its args, and the next parameter index.
func processCondition(cond Condition, paramCount int) (string, []any, int) {
	sanitizedField := ""
	if cond.Type != Custom && cond.Type != Or && cond.Field != "" {
		sanitizedField = sanitizeQualifiedIdentifier(cond.Field)
	}

	switch cond.Type {
	case Custom:
		return handleCustomCondition(cond, paramCount)
	case Or:
		return handleOrCondition(cond, paramCount)
	case Any:
		if sanitizedField == "" {
			return "", []any{}, paramCount
		}
		return handleAnyCondition(cond, sanitizedField, paramCount)
	case Equal, NotEqual, GreaterThan, LessThan, LessThanOrEqual, GreaterThanOrEqual, ILike:
		if sanitizedField == "" {
			return "", []any{}, paramCount
		}
		return handleStandardCondition(cond, sanitizedField, paramCount)
	}
	return "", []any{}, paramCount
}

// buildWhereClause generates the WHERE part of the query; top-level
// conditions are combined with AND.
func buildWhereClause(inputConditions []Condition, startParamIndex int) (string, []any, int) {
	conditions := make([]string, 0, len(inputConditions))
	args := []any{}
	paramCount := startParamIndex

	for _, cond := range inputConditions {
		conditionStr, newArgs, nextParamCount := processCondition(cond, paramCount)
		if conditionStr != "" {
			conditions = append(conditions, conditionStr)
			args = append(args, newArgs...)
			paramCount = nextParamCount
		}
	}

	if len(conditions) == 0 {
		return "", args, paramCount
	}
	return "WHERE " + strings.Join(conditions, " AND "), args, paramCount
}
