package form

import "fmt"

// Mode is either Creating or Editing a specific product. The zero value is
// Creating.
type Mode struct {
	editing bool
	id      int
}

// Creating is the mode in which Submit inserts a new product.
func Creating() Mode {
	return Mode{}
}

// Editing is the mode in which Submit overwrites product id.
func Editing(id int) Mode {
	return Mode{editing: true, id: id}
}

// Editing reports the product being edited, if any.
func (m Mode) Editing() (int, bool) {
	return m.id, m.editing
}

func (m Mode) String() string {
	if m.editing {
		return fmt.Sprintf("editing(%d)", m.id)
	}
	return "creating"
}
