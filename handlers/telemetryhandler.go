package handlers

import (
	"encoding/csv"
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"strconv"
	"time"

	"carbonwise-server/db"
	"carbonwise-server/internals"
	"carbonwise-server/model"
)

type TelemetryUpdateRequest struct {
	UserID       string   `json:"user_id"`
	Lat          *float64 `json:"lat"`
	Lon          *float64 `json:"lon"`
	SpeedKmh     *float64 `json:"speed_kmh"`
	DistanceKm   *float64 `json:"distance_km"`
	TimestampIso string   `json:"timestamp_iso"`
}

type TelemetryUpdateResponse struct {
	Stored model.TelemetrySample `json:"stored"`
}

type PredictModeResponse struct {
	SpeedKmh      float64 `json:"speed_kmh"`
	PredictedMode string  `json:"predicted_mode"`
}

func HandleTelemetryUpdate(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "POST":
		ingestTelemetrySample(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func ingestTelemetrySample(w http.ResponseWriter, r *http.Request) {
	// get request body
	var request TelemetryUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		log.Println("Error decoding request body: ", err)
		http.Error(w, "Malformed request body", http.StatusBadRequest)
		return
	}
	if request.UserID == "" {
		log.Println("Missing user id")
		http.Error(w, "Missing user id", http.StatusBadRequest)
		return
	}

	// a missing or unparsable timestamp falls back to now
	timestamp := time.Now().UTC()
	if request.TimestampIso != "" {
		parsed, err := time.Parse(time.RFC3339, request.TimestampIso)
		if err == nil {
			timestamp = parsed.UTC()
		} else {
			log.Println("Wrong timestamp format, using current time: ", err)
		}
	}

	telemetryDAO := db.NewTelemetryDAO(db.GetDB())

	// fetch a short trailing history for the realtime inference, newest
	// first, then reverse into chronological order
	recent, err := telemetryDAO.GetRecentSamples(request.UserID, internals.RealtimeHistorySize)
	if err != nil {
		log.Println("Warning: failed to fetch recent samples for smoothing: ", err)
		recent = nil
	}
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].Timestamp.Before(recent[j].Timestamp)
	})

	currentSpeed := 0.0
	if request.SpeedKmh != nil {
		currentSpeed = *request.SpeedKmh
	}
	inferredMode := internals.InferRealtimeMode(recent, currentSpeed)

	sample := model.TelemetrySample{
		UserID:       request.UserID,
		Timestamp:    timestamp,
		Date:         timestamp.Format("2006-01-02"),
		Lat:          request.Lat,
		Lon:          request.Lon,
		SpeedKmh:     request.SpeedKmh,
		DistanceKm:   request.DistanceKm,
		InferredMode: inferredMode,
		InsertedAt:   time.Now().UTC(),
	}
	err = telemetryDAO.CreateSample(&sample)
	if err != nil {
		log.Println("Error storing telemetry sample: ", err)
		http.Error(w, "Database unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(TelemetryUpdateResponse{Stored: sample})
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding JSON", http.StatusInternalServerError)
		return
	}
}

func HandleDailyModes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		computeDailyModes(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func computeDailyModes(w http.ResponseWriter, r *http.Request) {
	userID, day, ok := dailyModesParams(w, r)
	if !ok {
		return
	}

	telemetryDAO := db.NewTelemetryDAO(db.GetDB())
	samples, err := telemetryDAO.GetSamplesForDay(userID, day)
	if err != nil {
		log.Println("Error loading samples: ", err)
		http.Error(w, "Database unavailable", http.StatusServiceUnavailable)
		return
	}

	breakdown := internals.DailyModeBreakdown(userID, day, samples)

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(breakdown)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding JSON", http.StatusInternalServerError)
		return
	}
}

func HandleDailyModesExport(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		exportDailyModes(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func exportDailyModes(w http.ResponseWriter, r *http.Request) {
	userID, day, ok := dailyModesParams(w, r)
	if !ok {
		return
	}

	telemetryDAO := db.NewTelemetryDAO(db.GetDB())
	samples, err := telemetryDAO.GetSamplesForDay(userID, day)
	if err != nil {
		log.Println("Error loading samples: ", err)
		http.Error(w, "Database unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=telemetry_export_"+userID+"_"+day+".csv")

	writer := csv.NewWriter(w)
	writeExportRows(writer, userID, day, samples)
	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Println("Error writing csv export: ", err)
	}
}

func writeExportRows(writer *csv.Writer, userID, day string, samples []model.TelemetrySample) {
	_ = writer.Write([]string{"record_id", "timestamp", "date", "user_id", "lat", "lon", "speed_kmh", "distance_km", "inferred_mode"})

	exportedAt := time.Now().UTC().Format(time.RFC3339)

	if len(samples) == 0 {
		_ = writer.Write([]string{})
		_ = writer.Write([]string{"SUMMARY"})
		_ = writer.Write([]string{"date", "user_id", "total_km", "records_count", "exported_at"})
		_ = writer.Write([]string{day, userID, "0", "0", exportedAt})
		return
	}

	smoothed := internals.SmoothSpeeds(internals.SampleSpeeds(samples), internals.SmoothingWindow)
	distances := internals.SampleDistances(samples)

	totalKm := 0.0
	byMode := map[string]float64{}
	for i, sample := range samples {
		mode := internals.InferModeFromSpeed(smoothed[i])
		byMode[mode] += distances[i]
		totalKm += distances[i]

		_ = writer.Write([]string{
			strconv.Itoa(sample.SampleID),
			sample.Timestamp.UTC().Format(time.RFC3339),
			day,
			userID,
			formatOptionalFloat(sample.Lat, 6),
			formatOptionalFloat(sample.Lon, 6),
			formatOptionalFloat(sample.SpeedKmh, 3),
			strconv.FormatFloat(internals.RoundTo(distances[i], 6), 'f', -1, 64),
			mode,
		})
	}

	_ = writer.Write([]string{})
	_ = writer.Write([]string{"SUMMARY"})
	_ = writer.Write([]string{"date", "user_id", "total_km", "records_count", "exported_at"})
	_ = writer.Write([]string{
		day,
		userID,
		strconv.FormatFloat(internals.RoundTo(totalKm, 6), 'f', -1, 64),
		strconv.Itoa(len(samples)),
		exportedAt,
	})

	_ = writer.Write([]string{})
	_ = writer.Write([]string{"MODE_BREAKDOWN"})
	_ = writer.Write([]string{"mode", "km"})
	modes := make([]string, 0, len(byMode))
	for mode := range byMode {
		modes = append(modes, mode)
	}
	sort.Strings(modes)
	for _, mode := range modes {
		_ = writer.Write([]string{mode, strconv.FormatFloat(internals.RoundTo(byMode[mode], 6), 'f', -1, 64)})
	}
}

func dailyModesParams(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		log.Println("Missing user id")
		http.Error(w, "Missing user id", http.StatusBadRequest)
		return "", "", false
	}

	day := r.URL.Query().Get("day")
	if day == "" {
		day = time.Now().UTC().Format("2006-01-02")
	} else {
		_, err := time.Parse("2006-01-02", day)
		if err != nil {
			log.Println("Wrong day format: ", err)
			http.Error(w, "Day must be YYYY-MM-DD", http.StatusBadRequest)
			return "", "", false
		}
	}

	return userID, day, true
}

func formatOptionalFloat(value *float64, decimals int) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(internals.RoundTo(*value, decimals), 'f', -1, 64)
}

func HandlePredictMode(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		predictMode(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func predictMode(w http.ResponseWriter, r *http.Request) {
	speed, err := strconv.ParseFloat(r.URL.Query().Get("speed"), 64)
	if err != nil || speed < 0 {
		log.Println("Wrong speed value: ", err)
		http.Error(w, "The provided speed is not valid", http.StatusBadRequest)
		return
	}

	response := PredictModeResponse{
		SpeedKmh:      speed,
		PredictedMode: internals.PredictTransportMode(speed),
	}
	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding JSON", http.StatusInternalServerError)
		return
	}
}
