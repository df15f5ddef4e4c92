package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// TextFormatter produces the human-readable rendering of a result
type TextFormatter interface {
	Text() string
}

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(data)
		return
	}

	if t, ok := data.(TextFormatter); ok {
		fmt.Println(t.Text())
		return
	}
	fmt.Printf("%+v\n", data)
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
		return
	}
	fmt.Println(msg)
}
