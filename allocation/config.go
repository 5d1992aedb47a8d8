package allocation

// Role is one of the three assistant slots on an appointment row.
type Role string

const (
	RoleFirst  Role = "FIRST"
	RoleSecond Role = "SECOND"
	RoleThird  Role = "THIRD"
)

// Roles in the fixed order they are resolved.
var Roles = [3]Role{RoleFirst, RoleSecond, RoleThird}

// TimeOverride prefers a candidate list once the appointment starts at or
// after the given hour (hour + minute/60).
type TimeOverride struct {
	AfterHour float64  `json:"after_hour"`
	Names     []string `json:"names"`
}

// RoleRule is the allocation rule for one role within a department. All
// fields are optional; a rule with none of them ranks nobody.
type RoleRule struct {
	DoctorOverrides map[string][]string `json:"doctor_overrides,omitempty"`
	WhenFirstIs     map[string][]string `json:"when_first_is,omitempty"`
	TimeOverrides   []TimeOverride      `json:"time_overrides,omitempty"`
	Default         []string            `json:"default,omitempty"`
}

// Department groups a doctor roster, an assistant roster and per-role rules.
type Department struct {
	Doctors    []string          `json:"doctors"`
	Assistants []string          `json:"assistants"`
	Rules      map[Role]RoleRule `json:"allocation_rules"`
}

// GlobalFlags are the dashboard-wide allocation toggles.
type GlobalFlags struct {
	CrossDepartmentFallback bool `json:"cross_department_fallback"`
	UseProfileRoleFlags     bool `json:"use_profile_role_flags"`
	LoadBalance             bool `json:"load_balance"`
}

// Config is an immutable configuration snapshot. Callers rebuild it from the
// store and swap it in whole; nothing in this package mutates it.
type Config struct {
	Departments map[string]Department `json:"departments"`
	Global      GlobalFlags           `json:"global"`
}

// DepartmentForDoctor resolves the department owning a doctor by normalized
// identity. Unknown doctors yield "".
func (c Config) DepartmentForDoctor(doctor string) string {
	key := NormalizeIdentity(doctor)
	if key == "" {
		return ""
	}
	for name, dept := range c.Departments {
		for _, d := range dept.Doctors {
			if NormalizeIdentity(d) == key {
				return name
			}
		}
	}
	return ""
}

// Rule returns the role rule for a department, with ok=false when either the
// department or the rule is missing.
func (c Config) Rule(department string, role Role) (RoleRule, bool) {
	dept, ok := c.Departments[department]
	if !ok {
		return RoleRule{}, false
	}
	rule, ok := dept.Rules[role]
	return rule, ok
}

// DefaultConfig is the hardcoded fallback used when no configuration has
// been saved yet. Mirrors the clinic's long-standing paper rules.
func DefaultConfig() Config {
	return Config{
		Departments: map[string]Department{
			"PROSTHO": {
				Doctors:    []string{"DR. PUTT", "DR. MEHTA"},
				Assistants: []string{"ANSHIKA", "RAJA", "NITIN", "ARCHANA"},
				Rules: map[Role]RoleRule{
					RoleFirst: {
						Default:       []string{"ANSHIKA", "RAJA", "NITIN"},
						TimeOverrides: []TimeOverride{{AfterHour: 13, Names: []string{"ARCHANA"}}},
						DoctorOverrides: map[string][]string{
							"DR. MEHTA": {"RAJA", "NITIN"},
						},
					},
					RoleSecond: {
						WhenFirstIs: map[string][]string{
							"ANSHIKA": {"ARCHANA", "NITIN"},
						},
						Default: []string{"NITIN", "ANSHIKA"},
					},
					RoleThird: {
						Default: []string{"ARCHANA", "RAJA"},
					},
				},
			},
			"ENDO": {
				Doctors:    []string{"DR. SHARMA"},
				Assistants: []string{"PRIYA", "KOMAL", "SNEHA"},
				Rules: map[Role]RoleRule{
					RoleFirst:  {Default: []string{"PRIYA", "KOMAL"}},
					RoleSecond: {Default: []string{"KOMAL", "SNEHA"}},
					RoleThird:  {Default: []string{"SNEHA"}},
				},
			},
			"ORTHO": {
				Doctors:    []string{"DR. IYER"},
				Assistants: []string{"MEENA", "FARHA"},
				Rules: map[Role]RoleRule{
					RoleFirst:  {Default: []string{"MEENA", "FARHA"}},
					RoleSecond: {Default: []string{"FARHA", "MEENA"}},
				},
			},
		},
		Global: GlobalFlags{
			CrossDepartmentFallback: true,
			UseProfileRoleFlags:     true,
			LoadBalance:             false,
		},
	}
}
