package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentstation/bookshelf"
	"github.com/agentstation/bookshelf/pkg/catalogs"
	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

type action int

const (
	actionAdd action = iota
	actionSearch
	actionList
	actionSave
	actionLoad
	actionBorrow
	actionReturn
	actionExit
)

// prompt is one question asked before an action runs.
type prompt struct {
	label       string
	placeholder string
}

// prompts returns the questions an action needs answered, in order.
func (a action) prompts(workingFile string) []prompt {
	switch a {
	case actionAdd:
		return []prompt{
			{label: "Title"},
			{label: "Author"},
			{label: "Location (shelf number and row number)", placeholder: "3 2"},
			{label: "Quantity", placeholder: fmt.Sprint(constants.DefaultQuantity)},
		}
	case actionSearch, actionBorrow, actionReturn:
		return []prompt{{label: "Title"}}
	case actionSave:
		return []prompt{{label: "File name to save library state", placeholder: workingFile}}
	case actionLoad:
		return []prompt{{label: "File name to load library state from", placeholder: workingFile}}
	default:
		return nil
	}
}

// cmdRun performs an action against the library and reports the result.
func cmdRun(lib bookshelf.Library, a action, answers []string) tea.Cmd {
	return func() tea.Msg {
		text, err := run(lib, a, answers)
		return resultMsg{text: text, err: err}
	}
}

func run(lib bookshelf.Library, a action, answers []string) (string, error) {
	arg := func(i int) string {
		if i < len(answers) {
			return strings.TrimSpace(answers[i])
		}
		return ""
	}

	switch a {
	case actionAdd:
		return runAdd(lib, arg(0), arg(1), arg(2), arg(3))

	case actionSearch:
		book, err := lib.Book(arg(0))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(msgFoundFormat, book.Location, book.Title, book.Quantity), nil

	case actionList:
		books := lib.List()
		if len(books) == 0 {
			return msgEmptyLibrary, nil
		}
		var sb strings.Builder
		sb.WriteString(msgListHeader)
		for _, b := range books {
			sb.WriteString("\n")
			sb.WriteString(b.String())
		}
		return sb.String(), nil

	case actionBorrow:
		ok, err := lib.Borrow(arg(0))
		if err != nil {
			return "", err
		}
		if !ok {
			return "", errors.New(constants.ErrMsgUnavailable)
		}
		return msgBorrowed, nil

	case actionReturn:
		if _, err := lib.Return(arg(0)); err != nil {
			return "", err
		}
		return msgReturned, nil

	case actionSave:
		var err error
		if path := arg(0); path != "" {
			err = lib.SaveTo(path)
		} else {
			err = lib.Save()
		}
		if err != nil {
			return "", err
		}
		return msgSaved, nil

	case actionLoad:
		var err error
		if path := arg(0); path != "" {
			err = lib.LoadFrom(path)
		} else {
			err = lib.Load()
		}
		if err != nil {
			return "", err
		}
		return msgLoaded, nil
	}

	return "", nil
}

func runAdd(lib bookshelf.Library, title, author, location, quantity string) (string, error) {
	if title == "" {
		return "", errors.NewValidationError("title", title, "cannot be empty")
	}
	loc, err := catalogs.ParseLocation(location)
	if err != nil {
		return "", err
	}
	qty := constants.DefaultQuantity
	if quantity != "" {
		if qty, err = catalogs.ParseQuantity(quantity); err != nil {
			return "", err
		}
	}
	if err := lib.AddBook(title, author, loc, qty); err != nil {
		return "", err
	}
	return msgAdded, nil
}

// describe turns an action error into the text shown in the result pane.
func describe(a action, err error) string {
	switch {
	case errors.IsNotFound(err):
		return constants.ErrMsgBookNotFound
	case a == actionAdd && errors.IsValidationError(err):
		return msgAddFailed + "\n" + err.Error()
	default:
		return err.Error()
	}
}
