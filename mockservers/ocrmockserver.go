package mockservers

import (
	"fmt"
	"log"
	"net/http"
)

func StartOcrApiServer() {
	http.HandleFunc("/ocr", OcrApiHandler)

	fmt.Println("OCR API server starting on port 8092")

	err := http.ListenAndServe(":8092", nil)
	if err != nil {
		// fatal condition
		log.Fatal("Failed to start OCR API server")
	}
}

func OcrApiHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	// a fixed registration-document text containing a valid VIN
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write([]byte(`{"text": "VEHICLE IDENTIFICATION NUMBER 2HGFC2F59JH512345 MAKE HONDA FUEL GASOLINE"}`))
	if err != nil {
		fmt.Println(err)
		http.Error(w, "error while writing the response", http.StatusInternalServerError)
	}
}
