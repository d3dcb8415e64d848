package memory

import "docdash/internal/model"

// SampleDocuments returns the fixed records the dashboard starts with.
func SampleDocuments() []model.DocumentRecord {
	return []model.DocumentRecord{
		{
			ID:         "1",
			Name:       "Smart Contract Audit Report",
			Summary:    "Comprehensive security analysis of DeFi protocol with vulnerability assessments and recommendations.",
			Hash:       "0xa1b2c3...f4e5d6",
			Verified:   true,
			UploadDate: "2025-01-15",
			Size:       "2.4 MB",
		},
		{
			ID:         "2",
			Name:       "Tokenomics Whitepaper",
			Summary:    "Detailed token distribution model and economic framework for blockchain governance.",
			Hash:       "0xb2c3d4...g5f6e7",
			Verified:   true,
			UploadDate: "2025-01-14",
			Size:       "1.8 MB",
		},
		{
			ID:         "3",
			Name:       "Legal Compliance Document",
			Summary:    "Regulatory framework analysis and compliance guidelines for cryptocurrency operations.",
			Hash:       "0xc3d4e5...h6g7f8",
			Verified:   false,
			UploadDate: "2025-01-13",
			Size:       "3.1 MB",
		},
	}
}
