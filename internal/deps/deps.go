package deps

// tool names an external binary and how vidcompress uses it.
type tool struct {
	name        string
	command     string
	description string
	optional    bool
}

// Status reports where a binary was found, or why it was not.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Source      string
	Detail      string
}

func (t tool) status() Status {
	return Status{
		Name:        t.name,
		Command:     t.command,
		Description: t.description,
		Optional:    t.optional,
	}
}

// candidate is one place a binary may live; lookup returns "" when absent.
type candidate struct {
	source string
	lookup func(name string) string
}
