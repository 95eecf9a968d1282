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

var ocrApiUrl string

type OcrResponse struct {
	Text string `json:"text"`
}

func InitOcrApi() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	ocrApiUrl = os.Getenv("OCR_API_URL")
	if ocrApiUrl == "" {
		ocrApiUrl = "http://localhost:8092/ocr"
	}
}

// ExtractTextFromImage sends image bytes to the OCR service and returns the
// recognized text.
func ExtractTextFromImage(image []byte, contentType string) (string, error) {
	resp, err := http.Post(ocrApiUrl, contentType, bytes.NewReader(image))
	if err != nil {
		log.Println("Error while calling ocr api: ", err)
		return "", err
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
		return "", err
	}

	// check response status code
	if resp.StatusCode != http.StatusOK {
		log.Println("Error while extracting text, status code: ", resp.StatusCode)
		return "", fmt.Errorf("ocr service returned status %d", resp.StatusCode)
	}

	var response OcrResponse
	jsonReader := bytes.NewReader(body)
	decoder := json.NewDecoder(jsonReader)
	err = decoder.Decode(&response)
	if err != nil {
		log.Println("Error while decoding: ", err)
		return "", err
	}

	return response.Text, nil
}
