package cmd

type Config struct {
	HTTPPort                string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	AdminUserID             string
	PendingReminderSchedule string
	PendingStaleAfter       string
}
