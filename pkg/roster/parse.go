// Package roster extracts course, schedule and class-list data from the
// loosely delimited section reports exported by the registrar.
package roster

const (
	// DefaultDepartment is used when neither section nor course code
	// carries a program prefix.
	DefaultDepartment = "BSIT"
	// UnknownSection is stored when no section code could be recovered.
	UnknownSection = "UNKNOWN"
)

// Parse runs every detector over the export and assembles the result.
// It returns false when the course code, the subject name or every student
// row is missing; no partial roster is returned in that case.
//
// Parse keeps no state between calls and is safe for concurrent use.
func Parse(text string) (*Roster, bool) {
	lines := Lines(text)

	r := &Roster{
		Section:     detectSection(lines),
		CourseCode:  detectCourseCode(lines),
		SubjectName: detectSubject(lines),
		FacultyName: detectFaculty(lines),
		YearLevel:   detectYearLevel(lines),
		Students:    detectStudents(lines),
		Schedules:   detectSchedules(lines),
	}

	if r.Section == "" {
		r.Section = recoverSection(lines)
	}
	r.Department = DepartmentOf(r.Section, r.CourseCode)

	if r.CourseCode == "" || r.SubjectName == "" || len(r.Students) == 0 {
		return nil, false
	}

	if r.Section == "" {
		r.Section = UnknownSection
	}
	if r.Schedules == nil {
		r.Schedules = []Schedule{}
	}
	return r, true
}

// DepartmentOf derives the department code from the leading letters of the
// section, then of the course code, then falls back to DefaultDepartment.
func DepartmentOf(section, courseCode string) string {
	if section != "" {
		if d := leadingUpper(section); d != "" {
			return d
		}
	}
	if courseCode != "" {
		if d := leadingUpper(courseCode); d != "" {
			return d
		}
	}
	return DefaultDepartment
}
