package cmd

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	OfficeHourStart       string
	OfficeHourEnd         string
	MaxDeliveriesPerDay   string
	MinProblemDescription string
	NotificationStrategy  string
	SMTPHost              string
	SMTPPort              string
	SMTPUser              string
	SMTPPassword          string
	SMTPFrom              string
}
