package variants

// NewDefaultRegistry constructs a registry pre-populated with the
// built-in variants.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()

	registry.MustRegister(newRing())
	registry.MustRegister(newDualRing())
	registry.MustRegister(newEllipsis())
	registry.MustRegister(newRipple())
	registry.MustRegister(newRoller())
	registry.MustRegister(newSpinner())
	registry.MustRegister(newGrid())
	registry.MustRegister(newFacebook())
	registry.MustRegister(newHeart())
	registry.MustRegister(newHourglass())

	return registry
}
