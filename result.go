package goarg

import "slices"

func newResult() *Result {
	return &Result{
		options:    []ParsedOption{},
		lookup:     map[string]int{},
		positional: []string{},
	}
}

// Count returns how many times the option with long flag name occurred
func (r *Result) Count(name string) int {
	if i, ok := r.lookup[name]; ok {
		return r.options[i].Count
	}

	return 0
}

// Contains reports whether the option with long flag name occurred at least once
func (r *Result) Contains(name string) bool {
	_, ok := r.lookup[name]
	return ok
}

// LastArgument returns the argument of the last occurrence of name which carried one.
// The bool is false when no occurrence carried an argument.
func (r *Result) LastArgument(name string) (string, bool) {
	i, ok := r.lookup[name]
	if !ok || len(r.options[i].Arguments) == 0 {
		return "", false
	}

	args := r.options[i].Arguments
	return args[len(args)-1], true
}

// Arguments returns the arguments given to name, in order of occurrence
func (r *Result) Arguments(name string) []string {
	if i, ok := r.lookup[name]; ok {
		return slices.Clone(r.options[i].Arguments)
	}

	return []string{}
}

// Options returns the parsed options in order of first occurrence
func (r *Result) Options() []ParsedOption {
	options := make([]ParsedOption, len(r.options))
	for i, opt := range r.options {
		options[i] = ParsedOption{
			Name:      opt.Name,
			Count:     opt.Count,
			Arguments: slices.Clone(opt.Arguments),
		}
	}

	return options
}

// Positional returns the positional arguments in order
func (r *Result) Positional() []string {
	return slices.Clone(r.positional)
}

func (r *Result) entry(name string) *ParsedOption {
	i, ok := r.lookup[name]
	if !ok {
		i = len(r.options)
		r.lookup[name] = i
		r.options = append(r.options, ParsedOption{Name: name, Arguments: []string{}})
	}

	return &r.options[i]
}

func (r *Result) addOccurrence(name string) {
	r.entry(name).Count++
}

func (r *Result) addArgument(name, argument string) {
	e := r.entry(name)
	e.Count++
	e.Arguments = append(e.Arguments, argument)
}

func (r *Result) addPositional(args ...string) {
	r.positional = append(r.positional, args...)
}
