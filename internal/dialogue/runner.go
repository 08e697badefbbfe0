// internal/dialogue/runner.go
package dialogue

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
)

// ScriptFile is the dialogue file inside a data directory.
const ScriptFile = "dialogue.json"

// Runner проигрывает диалоги: ключ -> список реплик.
// Одновременно идёт не больше одной сессии.
type Runner struct {
	script map[string][]string
	key    string
	line   int
}

// NewRunner creates a runner over an in-memory script.
func NewRunner(script map[string][]string) *Runner {
	if script == nil {
		script = make(map[string][]string)
	}
	return &Runner{script: script}
}

// LoadRunner reads the dialogue script from fsys.
func LoadRunner(fsys fs.FS) (*Runner, error) {
	file, err := fs.ReadFile(fsys, ScriptFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read dialogue file: %w", err)
	}
	var script map[string][]string
	if err := json.Unmarshal(file, &script); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dialogue file: %w", err)
	}
	return NewRunner(script), nil
}

// StartDialogue opens the session for key. Unknown keys and a running session are refused.
func (r *Runner) StartDialogue(key string) bool {
	if r.Active() {
		return false
	}
	if len(r.script[key]) == 0 {
		log.Printf("Dialogue: no lines for %q", key)
		return false
	}
	r.key, r.line = key, 0
	log.Printf("Dialogue: started %s", key)
	return true
}

// Active reports whether a session is running.
func (r *Runner) Active() bool { return r.key != "" }

// Line returns the current line of the running session.
func (r *Runner) Line() string {
	if !r.Active() {
		return ""
	}
	return r.script[r.key][r.line]
}

// Advance moves to the next line and ends the session after the last one.
func (r *Runner) Advance() {
	if !r.Active() {
		return
	}
	r.line++
	if r.line >= len(r.script[r.key]) {
		r.End()
	}
}

// End closes the running session.
func (r *Runner) End() {
	r.key, r.line = "", 0
}
