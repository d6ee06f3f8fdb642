package db_models

import "github.com/lib/pq"

// SchemeCatalogue returns the seed rows for the government scheme listing.
func SchemeCatalogue() []Scheme {
	return []Scheme{
		{
			Code:        1,
			Title:       "PM-KISAN Samman Nidhi",
			Description: "Financial benefit of ₹6,000/- per year in three equal installments to all landholding farmers families.",
			Category:    "Financial",
			Deadline:    "Open Year-Round",
			Status:      "Active",
			Link:        "https://pmkisan.gov.in/",
			Tags:        pq.StringArray{"Central", "Direct Transfer"},
		},
		{
			Code:        2,
			Title:       "Pradhan Mantri Fasal Bima Yojana (PMFBY)",
			Description: "One Nation One Scheme for crop insurance. Provides comprehensive insurance cover against failure of crop.",
			Category:    "Insurance",
			Deadline:    "31st July (Kharif)",
			Status:      "Closing Soon",
			Link:        "https://pmfby.gov.in/",
			Tags:        pq.StringArray{"Insurance", "Risk Cover"},
		},
		{
			Code:        3,
			Title:       "Kisan Credit Card (KCC)",
			Description: "Adequate and timely credit support from the banking system under a single window with flexible and simplified procedure.",
			Category:    "Credit",
			Deadline:    "Open Year-Round",
			Status:      "Active",
			Link:        "https://www.myscheme.gov.in/schemes/kcc",
			Tags:        pq.StringArray{"Loan", "Low Interest"},
		},
		{
			Code:        4,
			Title:       "Soil Health Card Scheme",
			Description: "Assisting states to issue soil health cards to all farmers once in a cycle of 3 years. Helps in optimal nutrient usage.",
			Category:    "Technical",
			Deadline:    "Ongoing Cycle",
			Status:      "Active",
			Link:        "https://soilhealth.dac.gov.in/",
			Tags:        pq.StringArray{"Soil", "Lab Test"},
		},
		{
			Code:        5,
			Title:       "PM Krishi Sinchai Yojana (PMKSY)",
			Description: "More crop per drop. Subsidies for drip and sprinkler irrigation systems to improve water use efficiency.",
			Category:    "Subsidy",
			Deadline:    "State-wise",
			Status:      "Active",
			Link:        "https://pmksy.gov.in/",
			Tags:        pq.StringArray{"Irrigation", "Subsidy"},
		},
		{
			Code:        6,
			Title:       "e-NAM (National Agriculture Market)",
			Description: "Pan-India electronic trading portal which networks the existing APMC mandis to create a unified national market.",
			Category:    "Market",
			Deadline:    "Registration Open",
			Status:      "Active",
			Link:        "https://www.enam.gov.in/",
			Tags:        pq.StringArray{"Trade", "Online Mandi"},
		},
	}
}
