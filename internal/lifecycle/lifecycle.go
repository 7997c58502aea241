// internal/lifecycle/lifecycle.go
package lifecycle

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Step is one runtime operation inside a fixed sequence.
type Step struct {
	Name     string
	Tolerant bool // a failure is logged and the sequence continues
	Run      func(ctx context.Context) error
}

// Run executes steps in order. A tolerant step's failure is reported as a
// warning and the sequence moves on; any other failure stops the sequence
// and is returned as-is so the runtime's own diagnostic survives. Tolerance
// is blind to the failure's cause: like `|| true` in a shell script it
// treats "resource already absent" and any other error the same way.
func Run(ctx context.Context, steps []Step) error {
	for _, step := range steps {
		logrus.Debugf("step: %s", step.Name)
		if err := step.Run(ctx); err != nil {
			if step.Tolerant {
				logrus.Warnf("%s: %v (continuing)", step.Name, err)
				continue
			}
			return err
		}
	}
	return nil
}
