package atlas

// Services returns a copy of the public service surface: alias to live
// instance for every prepared, non-internal service.
func (a *App) Services() map[string]any {
	a.surfaceMu.RLock()
	defer a.surfaceMu.RUnlock()
	out := make(map[string]any, len(a.services))
	for alias, inst := range a.services {
		out[alias] = inst
	}
	return out
}

// Actions returns a copy of the public action surface.
func (a *App) Actions() map[string]any {
	a.surfaceMu.RLock()
	defer a.surfaceMu.RUnlock()
	out := make(map[string]any, len(a.actions))
	for alias, inst := range a.actions {
		out[alias] = inst
	}
	return out
}

// GetService looks up one published service instance.
func (a *App) GetService(alias string) (any, bool) {
	a.surfaceMu.RLock()
	defer a.surfaceMu.RUnlock()
	inst, ok := a.services[alias]
	return inst, ok
}

// GetAction looks up one published action instance.
func (a *App) GetAction(alias string) (any, bool) {
	a.surfaceMu.RLock()
	defer a.surfaceMu.RUnlock()
	inst, ok := a.actions[alias]
	return inst, ok
}

func (a *App) publishService(alias string, inst any) {
	a.surfaceMu.Lock()
	a.services[alias] = inst
	a.surfaceMu.Unlock()
}

func (a *App) publishAction(alias string, inst any) {
	a.surfaceMu.Lock()
	a.actions[alias] = inst
	a.surfaceMu.Unlock()
}

func (a *App) removeService(alias string) {
	a.surfaceMu.Lock()
	delete(a.services, alias)
	a.surfaceMu.Unlock()
}

func (a *App) clearSurfaces() {
	a.surfaceMu.Lock()
	a.services = make(map[string]any)
	a.actions = make(map[string]any)
	a.surfaceMu.Unlock()
}
