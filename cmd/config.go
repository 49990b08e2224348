package cmd

type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	ShipStationBaseURL   string
	ShipStationAPIKey    string
	ShipStationAPISecret string
	UPSClientID          string
	UPSClientSecret      string
	UPSAuthURL           string
	UPSAPIURL            string
	OpenWeatherAPIKey    string
	OpenWeatherBaseURL   string
	OriginPostalCode     string
}
