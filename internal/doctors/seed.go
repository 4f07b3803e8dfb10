package doctors

// Seed returns the demo doctor directory. The records mirror the product's
// launch dataset for the Indian market and load at process start.
func Seed() []*Doctor {
	return []*Doctor{
		{
			ID:                   "1",
			Name:                 "Dr. Rajesh Kumar",
			Specialty:            "Cardiology",
			Qualifications:       "MBBS, MD (Cardiology), AIIMS Delhi",
			Experience:           "15 years",
			Rating:               4.8,
			ReviewCount:          245,
			ConsultationFee:      800,
			VideoConsultationFee: 600,
			Image:                "/placeholder.svg?height=200&width=200&text=Dr.+Rajesh",
			About:                "Dr. Rajesh Kumar is a renowned cardiologist with over 15 years of experience in treating heart conditions. He specializes in interventional cardiology and has performed over 2000 successful procedures.",
			ClinicAddress:        "Apollo Hospital, Sarita Vihar, New Delhi, Delhi 110076",
			Availability: &Availability{
				Clinic: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
				Online: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
			},
			TimeSlots:        []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00"},
			ConsultationType: []string{"clinic", "video", "call"},
		},
		{
			ID:                   "2",
			Name:                 "Dr. Priya Sharma",
			Specialty:            "Dermatology",
			Qualifications:       "MBBS, MD (Dermatology), PGIMER Chandigarh",
			Experience:           "12 years",
			Rating:               4.9,
			ReviewCount:          189,
			ConsultationFee:      700,
			VideoConsultationFee: 500,
			Image:                "/placeholder.svg?height=200&width=200&text=Dr.+Priya",
			About:                "Dr. Priya Sharma is a leading dermatologist specializing in cosmetic dermatology, acne treatment, and skin cancer prevention. She has helped thousands of patients achieve healthy, glowing skin.",
			ClinicAddress:        "Fortis Hospital, Sector 62, Noida, Uttar Pradesh 201301",
			Availability: &Availability{
				Clinic: []string{"Monday", "Wednesday", "Friday", "Saturday"},
				Online: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
			},
			TimeSlots:        []string{"10:00", "11:00", "12:00", "15:00", "16:00", "17:00", "18:00"},
			ConsultationType: []string{"clinic", "video", "call"},
		},
		{
			ID:                   "3",
			Name:                 "Dr. Amit Patel",
			Specialty:            "Neurology",
			Qualifications:       "MBBS, DM (Neurology), KEM Hospital Mumbai",
			Experience:           "18 years",
			Rating:               4.7,
			ReviewCount:          312,
			ConsultationFee:      1000,
			VideoConsultationFee: 800,
			Image:                "/placeholder.svg?height=200&width=200&text=Dr.+Amit",
			About:                "Dr. Amit Patel is a highly experienced neurologist specializing in stroke management, epilepsy treatment, and neurodegenerative disorders. He has been instrumental in establishing stroke care protocols in leading hospitals.",
			ClinicAddress:        "Kokilaben Dhirubhai Ambani Hospital, Andheri West, Mumbai, Maharashtra 400053",
			Availability: &Availability{
				Clinic: []string{"Tuesday", "Thursday", "Friday", "Saturday"},
				Online: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
			},
			TimeSlots:        []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"},
			ConsultationType: []string{"clinic", "video"},
		},
		{
			ID:                   "4",
			Name:                 "Dr. Sunita Reddy",
			Specialty:            "Pediatrics",
			Qualifications:       "MBBS, MD (Pediatrics), NIMHANS Bangalore",
			Experience:           "10 years",
			Rating:               4.9,
			ReviewCount:          156,
			ConsultationFee:      600,
			VideoConsultationFee: 450,
			Image:                "/placeholder.svg?height=200&width=200&text=Dr.+Sunita",
			About:                "Dr. Sunita Reddy is a compassionate pediatrician with expertise in child development, vaccination, and pediatric emergency care. She is known for her gentle approach with children and comprehensive care.",
			ClinicAddress:        "Manipal Hospital, HAL Airport Road, Bangalore, Karnataka 560017",
			Availability: &Availability{
				Clinic: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
				Online: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
			},
			TimeSlots:        []string{"09:00", "10:00", "11:00", "12:00", "15:00", "16:00", "17:00", "18:00"},
			ConsultationType: []string{"clinic", "video", "call"},
		},
		{
			ID:                   "5",
			Name:                 "Dr. Vikram Singh",
			Specialty:            "Orthopedics",
			Qualifications:       "MBBS, MS (Orthopedics), PGIMER Chandigarh",
			Experience:           "14 years",
			Rating:               4.6,
			ReviewCount:          203,
			ConsultationFee:      900,
			VideoConsultationFee: 700,
			Image:                "/placeholder.svg?height=200&width=200&text=Dr.+Vikram",
			About:                "Dr. Vikram Singh is a skilled orthopedic surgeon specializing in joint replacement, sports injuries, and spine surgery. He has successfully performed over 1500 orthopedic procedures.",
			ClinicAddress:        "Max Super Speciality Hospital, Saket, New Delhi, Delhi 110017",
			Availability: &Availability{
				Clinic: []string{"Monday", "Wednesday", "Thursday", "Friday", "Saturday"},
				Online: []string{"Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
			},
			TimeSlots:        []string{"08:00", "09:00", "10:00", "14:00", "15:00", "16:00", "17:00"},
			ConsultationType: []string{"clinic", "video"},
		},
		{
			ID:                   "6",
			Name:                 "Dr. Meera Joshi",
			Specialty:            "Psychiatry",
			Qualifications:       "MBBS, MD (Psychiatry), NIMHANS Bangalore",
			Experience:           "8 years",
			Rating:               4.8,
			ReviewCount:          134,
			ConsultationFee:      750,
			VideoConsultationFee: 600,
			Image:                "/placeholder.svg?height=200&width=200&text=Dr.+Meera",
			About:                "Dr. Meera Joshi is a dedicated psychiatrist specializing in anxiety disorders, depression, and cognitive behavioral therapy. She provides compassionate mental health care with a holistic approach.",
			ClinicAddress:        "Jaslok Hospital, Pedder Road, Mumbai, Maharashtra 400026",
			Availability: &Availability{
				Clinic: []string{"Monday", "Tuesday", "Thursday", "Friday"},
				Online: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
			},
			TimeSlots:        []string{"10:00", "11:00", "12:00", "15:00", "16:00", "17:00", "18:00"},
			ConsultationType: []string{"clinic", "video", "call"},
		},
	}
}
