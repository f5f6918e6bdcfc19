package logger

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldKind      = "kind"
	FieldAlias     = "alias"
	FieldPhase     = "phase"
	FieldEvent     = "event"
	FieldError     = "error"
	FieldAppID     = "app_id"
	FieldEnv       = "env"
	FieldRoot      = "root"
	FieldVersion   = "version"
	FieldCount     = "count"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	log.Info("prepared", logger.Fields(logger.FieldAlias, "database"))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for a phase that failed.
func ErrorFields(phase string, err error) map[string]interface{} {
	return map[string]interface{}{
		FieldPhase: phase,
		FieldError: err.Error(),
	}
}
