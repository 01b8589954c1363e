package dishdetail

import "github.com/colonyops/confusion/internal/core/menu"

// Kind tags which branch of the detail view is shown.
type Kind int

const (
	KindLoading Kind = iota
	KindError
	KindLoaded
	KindEmpty
)

func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "loading"
	case KindError:
		return "error"
	case KindLoaded:
		return "loaded"
	default:
		return "empty"
	}
}

// State is everything the detail view needs to render. Only the fields of
// the active Kind are meaningful.
type State struct {
	Kind     Kind
	ErrMess  string
	Dish     menu.Dish
	Comments []menu.Comment // nil means the comments have not been provided
}

// NewState picks the view branch. The checks run in a fixed order: loading
// wins over an error, an error over a dish, and with none of them the view
// is empty.
func NewState(isLoading bool, errMess string, dish *menu.Dish, comments []menu.Comment) State {
	switch {
	case isLoading:
		return State{Kind: KindLoading}
	case errMess != "":
		return State{Kind: KindError, ErrMess: errMess}
	case dish != nil:
		return State{Kind: KindLoaded, Dish: *dish, Comments: comments}
	default:
		return State{Kind: KindEmpty}
	}
}
