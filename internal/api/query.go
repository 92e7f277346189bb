package api

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/phrazzld/tasks-api/internal/api/shared"
)

// Query parameter names understood by the tasks endpoint.
const (
	paramTaskID    = "taskid"
	paramCompleted = "completed"
	paramPage      = "page"
)

// maxPage keeps page offsets well inside the int range.
const maxPage = 1 << 30

// queryKind tags the recognised query shapes.
type queryKind int

const (
	queryUnknown queryKind = iota
	queryListAll
	queryByTaskID
	queryByCompleted
	queryByPage
)

func (k queryKind) String() string {
	switch k {
	case queryListAll:
		return "list_all"
	case queryByTaskID:
		return "by_task_id"
	case queryByCompleted:
		return "by_completed"
	case queryByPage:
		return "by_page"
	default:
		return "unknown"
	}
}

// taskQuery is the parsed shape of a request's query string.
// raw holds the value of the selecting parameter, unvalidated.
type taskQuery struct {
	kind queryKind
	raw  string
}

// parseTaskQuery selects the query shape. When several recognised
// parameters are present, taskid wins over completed, which wins over page.
func parseTaskQuery(values url.Values) taskQuery {
	if _, ok := values[paramTaskID]; ok {
		return taskQuery{kind: queryByTaskID, raw: values.Get(paramTaskID)}
	}
	if _, ok := values[paramCompleted]; ok {
		return taskQuery{kind: queryByCompleted, raw: values.Get(paramCompleted)}
	}
	if _, ok := values[paramPage]; ok {
		return taskQuery{kind: queryByPage, raw: values.Get(paramPage)}
	}
	if len(values) == 0 {
		return taskQuery{kind: queryListAll}
	}
	return taskQuery{kind: queryUnknown}
}

type taskIDParam struct {
	TaskID string `validate:"required,number"`
}

type completedParam struct {
	Completed string `validate:"required,oneof=Y N"`
}

type pageParam struct {
	Page string `validate:"required,number"`
}

// digits classifies a numeric query value.
type digits int

const (
	digitsInvalid digits = iota
	digitsOK
	// digitsOutOfRange is all digits but too large to name any row or page.
	digitsOutOfRange
)

// parseDigits validates raw with the given param struct and converts
// it to an int64.
func parseDigits(raw string, param interface{}) (int64, digits) {
	if err := shared.ValidateRequest(param); err != nil {
		return 0, digitsInvalid
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, digitsOutOfRange
	}
	if err != nil {
		return 0, digitsInvalid
	}
	return n, digitsOK
}

func parseTaskID(raw string) (int64, digits) {
	return parseDigits(raw, taskIDParam{TaskID: raw})
}

func parsePage(raw string) (int, digits) {
	n, d := parseDigits(raw, pageParam{Page: raw})
	if d == digitsOK && n > int64(maxPage) {
		return 0, digitsOutOfRange
	}
	return int(n), d
}

func validCompleted(raw string) bool {
	return shared.ValidateRequest(completedParam{Completed: raw}) == nil
}
