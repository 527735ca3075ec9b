package errchain

import "fmt"

// defaultEngine formats in-process and owns no resources.
type defaultEngine struct{}

// DefaultEngine returns the in-process engine: deterministic formatting,
// code-equality classification, no resources to release.
func DefaultEngine() Engine {
	return defaultEngine{}
}

func (defaultEngine) Render(code Code, message string) string {
	if code == OK {
		return "ok"
	}
	if message == "" {
		message = Message(code)
	}

	return fmt.Sprintf("%s [%s]", message, code)
}

func (defaultEngine) Classify(code Code) Class {
	if code == OK {
		return ClassOK
	}
	return ClassKO
}

func (defaultEngine) Release(Handle) {}
