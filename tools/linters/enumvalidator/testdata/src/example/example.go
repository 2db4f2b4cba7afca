package example

type EventType string

const (
	EventTypeTaskCreated   EventType = "task.created"
	EventTypeTaskCompleted EventType = "task.completed"
)

type StorageDriver string

const (
	StorageDriverSQLite StorageDriver = "sqlite"
)

type Event struct {
	Type EventType
}

type Config struct {
	StorageDriver StorageDriver
}

func bad() {
	e := &Event{}
	e.Type = "task.deleted" // want "enum field Type assigned string literal"

	c := &Config{}
	c.StorageDriver = "mysql" // want "enum field StorageDriver assigned string literal"

	_ = Event{Type: "task.created"} // want "enum field Type assigned string literal"
}

func good() {
	e := &Event{}
	e.Type = EventTypeTaskCompleted // OK: using constant

	c := &Config{}
	c.StorageDriver = StorageDriverSQLite // OK: using constant

	_ = Event{Type: EventTypeTaskCreated}
}

func alsoGood() {
	// OK: Variable, not literal
	driver := StorageDriverSQLite
	c := &Config{StorageDriver: driver}
	_ = c
}
