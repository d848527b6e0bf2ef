package logging

// GetLogType builds a key/value slice for structured logging.
// It takes up to 2 arguments: subtype and contextId1 (e.g. a slug or
// request identifier), which are pushed as labeled fields with every log.
func GetLogType(logType ...string) []any {
	var temp []any
	for i := 0; i < len(logType); i++ {
		if i == 0 {
			temp = append(temp, "subType")
		} else if i == 1 {
			temp = append(temp, "contextId1")
		} else {
			break
		}
		temp = append(temp, logType[i])
	}
	return temp
}

func GetLogTypeInitialization() []any {
	return GetLogType("initialization")
}

func GetLogTypeSeed() []any {
	return GetLogType("seed")
}
