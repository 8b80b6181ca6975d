package cluster

// DefaultTarget is the machine token assumed when the operator does not
// name one.
const DefaultTarget = "a"

// Resolve returns the live machines whose spec short name or
// fully-qualified name equals token. An empty token resolves as
// DefaultTarget. The snapshot is read, never mutated; members without a
// running instance are not yielded.
func Resolve(svc Service, token string) []Machine {
	if token == "" {
		token = DefaultTarget
	}
	var matches []Machine
	for _, e := range svc.Machines() {
		if token != e.Spec.Name && token != e.Spec.FQName {
			continue
		}
		if e.Machine == nil {
			continue
		}
		matches = append(matches, e.Machine)
	}
	return matches
}

// ForEach applies fn to every machine Resolve finds, in snapshot order,
// and reports how many were touched. Zero matches is a result, not an
// error; callers decide whether an empty match set is user-facing. An
// error from fn stops the pass and is returned with the count of
// machines already touched.
func ForEach(svc Service, token string, fn func(Machine) error) (int, error) {
	found := 0
	for _, m := range Resolve(svc, token) {
		if err := fn(m); err != nil {
			return found, err
		}
		found++
	}
	return found, nil
}
