package config

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	ParamTypeInt    ParamType = "int"
	ParamTypeFloat  ParamType = "float"
	ParamTypeString ParamType = "string"
)

// Parameter describes a single setting for presentation.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// Parameters lists the settings in display order.
func (c Config) Parameters() []Parameter {
	return []Parameter{
		intParam("rows", "Rows", c.Rows),
		intParam("cols", "Columns", c.Cols),
		floatParam("chance", "Start chance", c.Chance),
		int64Param("seed", "Seed", c.Seed),
		intParam("scale", "Cell scale", c.Scale),
		stringParam("theme", "Theme", c.Theme),
	}
}

func intParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func stringParam(key, label, value string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeString, Value: value}
}
