package config

const (
	defaultDataDir          = "~/.local/share/rollcall/data"
	defaultExportDir        = "~/rollcall/exports"
	defaultLogDir           = "~/.local/share/rollcall/logs"
	defaultRequestTimeout   = 30
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogRetentionDays = 60
	defaultYouthMinAge      = 18
	defaultYouthMaxAge      = 35
)

// Default returns a Config populated with repository defaults. The column
// aliases match the headers the program sheets have used to date.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			ExportDir: defaultExportDir,
			LogDir:    defaultLogDir,
		},
		Source: Source{
			RequestTimeout: defaultRequestTimeout,
		},
		Columns: Columns{
			Identity:   []string{"WHAT IS YOUR NATIONAL ID?", "National ID"},
			Contact:    []string{"Business phone number", "Phone number"},
			Location:   []string{"Business Location", "County"},
			Gender:     []string{"Gender of owner", "Gender"},
			Age:        []string{"Age of owner (full years)", "Age"},
			Disability: []string{"DO YOU IDENTIFY AS A PERSON WITH A DISABILITY? (THIS QUESTION IS OPTIONAL AND YOUR RESPONSE WILL NOT AFFECT YOUR ELIGIBILITY FOR THE PROGRAM.)", "PWD Status"},
			Timestamp:  []string{"Timestamp", "Training date"},
		},
		Demographics: Demographics{
			YouthMinAge: defaultYouthMinAge,
			YouthMaxAge: defaultYouthMaxAge,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
