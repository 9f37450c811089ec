package model

// String-backed enums stored as-is in the database. The Label methods carry
// the Portuguese display names the admin frontend and certificates print.

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "MULTIPLE_CHOICE"
	QuestionTypeText           QuestionType = "TEXT"
)

var questionTypeLabels = map[QuestionType]string{
	QuestionTypeMultipleChoice: "Múltipla escolha",
	QuestionTypeText:           "Texto",
}

func (t QuestionType) Label() string { return questionTypeLabels[t] }

func QuestionTypeValues() []QuestionType {
	return []QuestionType{QuestionTypeMultipleChoice, QuestionTypeText}
}

type ProjectType string

const (
	ProjectTypeScientific    ProjectType = "SCIENTIFIC"
	ProjectTypeTechnological ProjectType = "TECHNOLOGICAL"
)

var projectTypeLabels = map[ProjectType]string{
	ProjectTypeScientific:    "Científico",
	ProjectTypeTechnological: "Tecnológico",
}

func (t ProjectType) Label() string { return projectTypeLabels[t] }

func ProjectTypeValues() []ProjectType {
	return []ProjectType{ProjectTypeScientific, ProjectTypeTechnological}
}

type SchoolGrade string

const (
	SchoolGradeFundamental SchoolGrade = "FUNDAMENTAL"
	SchoolGradeMedio       SchoolGrade = "MEDIO"
)

var schoolGradeLabels = map[SchoolGrade]string{
	SchoolGradeFundamental: "Ensino Fundamental",
	SchoolGradeMedio:       "Ensino Médio",
}

func (g SchoolGrade) Label() string { return schoolGradeLabels[g] }

func SchoolGradeValues() []SchoolGrade {
	return []SchoolGrade{SchoolGradeFundamental, SchoolGradeMedio}
}

type SchoolType string

const (
	SchoolTypePublic  SchoolType = "PUBLIC"
	SchoolTypePrivate SchoolType = "PRIVATE"
)

var schoolTypeLabels = map[SchoolType]string{
	SchoolTypePublic:  "Pública",
	SchoolTypePrivate: "Privada",
}

func (t SchoolType) Label() string { return schoolTypeLabels[t] }

func SchoolTypeValues() []SchoolType {
	return []SchoolType{SchoolTypePublic, SchoolTypePrivate}
}
