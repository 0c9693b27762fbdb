package services

// Events is the slice of the notification hub the services need. A nil
// publisher is tolerated so tests can skip it.
type Events interface {
	Publish(event, kind, message string)
}

func publish(e Events, event, kind, message string) {
	if e != nil {
		e.Publish(event, kind, message)
	}
}
