package server

import "net/http"

// fitGuide is the fixed reference payload served on /fit-guide.
var fitGuide = map[string]any{
	"fit_types": map[string]any{
		"slim": map[string]any{
			"description": "Close-fitting with minimal ease. Best for lean builds.",
			"chest_ease":  "3-4 cm total ease",
			"characteristics": []string{
				"Fitted through torso",
				"Tapered sleeves",
				"Modern silhouette",
			},
		},
		"regular": map[string]any{
			"description": "Classic fit with comfortable ease. Suitable for most body types.",
			"chest_ease":  "4-5 cm total ease",
			"characteristics": []string{
				"Comfortable fit",
				"Standard proportions",
				"Traditional silhouette",
			},
		},
		"loose": map[string]any{
			"description": "Relaxed fit with generous ease. Comfortable for layering.",
			"chest_ease":  "5-6 cm total ease",
			"characteristics": []string{
				"Roomy fit",
				"Relaxed silhouette",
				"Great for layering",
			},
		},
	},
	"measurement_tips": map[string]string{
		"chest":           "Measure around fullest part of chest, arms at sides",
		"neck":            "Measure around base of neck where collar would sit",
		"shoulder_length": "From neck point to end of shoulder",
		"arm_length":      "From shoulder point to wrist bone",
		"shirt_length":    "From high point shoulder to desired hem length",
	},
}

func (s *Server) handleFitGuide(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "success",
		"fit_guide": fitGuide,
	})
}
