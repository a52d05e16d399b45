package magicset_test

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/ricpacca/magicset"
)

type widget struct {
	magicset.Unique
	Name string
}

func newWidget(name string) *widget {
	return &widget{Unique: magicset.NewUnique(), Name: name}
}

func newWidgetWithID(id uuid.UUID, name string) *widget {
	return &widget{Unique: magicset.MustUniqueWithID(id), Name: name}
}

type widgetJSON struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func (w *widget) MarshalJSON() ([]byte, error) {
	return json.Marshal(widgetJSON{ID: w.ID(), Name: w.Name})
}

func (w *widget) UnmarshalJSON(data []byte) error {
	var raw widgetJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	u, err := magicset.NewUniqueWithID(raw.ID)
	if err != nil {
		return err
	}

	w.Unique = u
	w.Name = raw.Name
	return nil
}

func (w *widget) GobEncode() ([]byte, error) {
	return w.MarshalJSON()
}

func (w *widget) GobDecode(data []byte) error {
	return w.UnmarshalJSON(data)
}

func names(items []*widget) []string {
	result := make([]string, 0, len(items))
	for _, w := range items {
		result = append(result, w.Name)
	}
	return result
}
