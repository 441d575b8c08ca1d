package wizard

import "os"

// Detection carries environment facts used to prefill the wizard.
type Detection struct {
	AppURL         string
	CredentialsSet bool
}

// Detect inspects the environment for provider settings already exported.
func Detect() Detection {
	return Detection{
		AppURL: os.Getenv("JELASTIC_APP_URL"),
		CredentialsSet: os.Getenv("JELASTIC_USER_ID") != "" &&
			os.Getenv("JELASTIC_USER_PASSWORD") != "",
	}
}
