package externals

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
)

var vinApiUrl string

type VinDecodeResponse struct {
	Results []VinDecodeResult `json:"Results"`
}

type VinDecodeResult struct {
	Make            string `json:"Make"`
	Model           string `json:"Model"`
	ModelYear       string `json:"ModelYear"`
	VehicleType     string `json:"VehicleType"`
	BodyClass       string `json:"BodyClass"`
	FuelTypePrimary string `json:"FuelTypePrimary"`
}

func InitVinRegistryApi() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	vinApiUrl = os.Getenv("VIN_API_URL")
	if vinApiUrl == "" {
		// public vehicle registry decoder
		vinApiUrl = "https://vpic.nhtsa.dot.gov/api/vehicles/DecodeVinValues/"
	}
}

// DecodeVin resolves a VIN to make, model and fuel type through the public
// registry.
func DecodeVin(vin string) (VinDecodeResult, error) {
	apiUrl := vinApiUrl + vin + "?format=json"
	resp, err := http.Get(apiUrl)
	if err != nil {
		log.Println("Error while calling vin registry api: ", err)
		return VinDecodeResult{}, err
	}
	defer func() {
		err = resp.Body.Close()
		if err != nil {
			log.Println("Error closing response body:", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Println("Error while reading response body: ", err)
		return VinDecodeResult{}, err
	}

	// check response status code
	if resp.StatusCode != http.StatusOK {
		log.Println("Error while decoding vin, status code: ", resp.StatusCode)
		return VinDecodeResult{}, fmt.Errorf("vin registry returned status %d", resp.StatusCode)
	}

	var response VinDecodeResponse
	jsonReader := bytes.NewReader(body)
	decoder := json.NewDecoder(jsonReader)
	err = decoder.Decode(&response)
	if err != nil {
		log.Println("Error while decoding: ", err)
		return VinDecodeResult{}, err
	}

	if len(response.Results) == 0 {
		return VinDecodeResult{}, fmt.Errorf("vin registry returned no results for %s", vin)
	}

	return response.Results[0], nil
}
