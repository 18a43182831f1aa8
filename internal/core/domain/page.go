package domain

// Page is a navigation target of the web application.
type Page string

const (
	PageIndex            Page = "index.html"
	PageTeacher          Page = "teacher.html"
	PageTeacherDashboard Page = "teacher_dashboard.html"
	PageStudent          Page = "student.html"
)
