package cli

import "fmt"

type unknownTriggerError struct {
	trigger string
}

func (e unknownTriggerError) Error() string {
	return fmt.Sprintf("no clip bound to trigger: %s", e.trigger)
}

func errUnknownTrigger(trigger string) error {
	return unknownTriggerError{trigger: trigger}
}
