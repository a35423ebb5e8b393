package consts

const (
	MinNameLength     = 2
	MaxNameLength     = 50
	MaxBioLength      = 500
	MaxLocationLength = 100
	MaxSkillsPerList  = 10
	MaxSkillLength    = 30

	DefaultPageSize = 10
	MaxPageSize     = 100
)
