package seed

import "github.com/citasmedicas/booking-api/internal/model"

// Catalog returns the static doctor directory shipped with the application.
// Order matters: it is the tie-breaker for equal ratings in featured listings.
func Catalog() []model.Doctor {
	return []model.Doctor{
		{
			ID:          "doctor_1",
			Name:        "Dra. Mariana González",
			Specialty:   "Cardiología",
			Rating:      4.9,
			Reviews:     127,
			Experience:  15,
			Location:    "Hospital Central",
			IsAvailable: true,
			Price:       50,
			Schedule:    model.TimeSlots{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"},
			Description: "Cardióloga con 15 años de experiencia en diagnóstico y manejo de enfermedades cardiovasculares. Manejo de hipertensión, arritmias, ecocardiografía y rehabilitación cardiaca.",
			PhoneNumber: "+51 987 654 321",
		},
		{
			ID:          "doctor_2",
			Name:        "Dr. Carlos Ramírez",
			Specialty:   "Neurología",
			Rating:      4.8,
			Reviews:     98,
			Experience:  12,
			Location:    "Clínica San Rafael",
			IsAvailable: true,
			Price:       60,
			Schedule:    model.TimeSlots{"08:00", "10:00", "11:00", "13:00", "14:00", "16:00"},
			Description: "Neurólogo especialista en migraña, epilepsia y trastornos del sueño. Experiencia en consultas ambulatorias y estudios diagnósticos (EEG, valoración neuroclínica).",
			PhoneNumber: "+51 987 654 322",
		},
		{
			ID:          "doctor_3",
			Name:        "Dra. Ana Martínez",
			Specialty:   "Pediatría",
			Rating:      5.0,
			Reviews:     203,
			Experience:  20,
			Location:    "Hospital Infantil",
			IsAvailable: false,
			Price:       45,
			Schedule:    model.TimeSlots{"08:00", "09:00", "10:00", "14:00", "15:00", "16:00"},
			Description: "Pediatra con amplia trayectoria en seguimiento del crecimiento y desarrollo, vacunas y manejo de patologías agudas y crónicas en niños y adolescentes.",
			PhoneNumber: "+51 987 654 323",
		},
		{
			ID:          "doctor_4",
			Name:        "Dr. Juan Pérez",
			Specialty:   "Medicina General",
			Rating:      4.7,
			Reviews:     156,
			Experience:  10,
			Location:    "Clínica del Sol",
			IsAvailable: true,
			Price:       40,
			Schedule:    model.TimeSlots{"09:00", "10:00", "11:00", "14:00", "15:00"},
			Description: "Médico general con enfoque preventivo y manejo integral de atención primaria. Seguimiento de enfermedades crónicas, control de factores de riesgo y derivación especializada cuando corresponde.",
			PhoneNumber: "+51 987 654 324",
		},
		{
			ID:          "doctor_5",
			Name:        "Dra. Laura Sánchez",
			Specialty:   "Dermatología",
			Rating:      4.9,
			Reviews:     134,
			Experience:  14,
			Location:    "Clínica Dermatológica",
			IsAvailable: true,
			Price:       55,
			Schedule:    model.TimeSlots{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"},
			Description: "Dermatóloga con experiencia en diagnóstico y tratamiento de enfermedades de la piel, pelo y uñas. Manejo de acné, dermatitis, psoriasis y procedimientos menores dermatológicos.",
			PhoneNumber: "+51 987 654 325",
		},
		{
			ID:                   "doctor_6",
			Name:                 "Dr. Miguel Torres",
			Specialty:            "Traumatología",
			Rating:               4.6,
			Reviews:              87,
			Experience:           11,
			Location:             "Hospital Central",
			IsAvailable:          true,
			Price:                55,
			Schedule:             model.TimeSlots{"08:00", "09:00", "11:00", "15:00", "16:00"},
			Description:          "Traumatólogo especializado en lesiones deportivas, fracturas y rehabilitación del aparato locomotor.",
			PhoneNumber:          "+51 987 654 326",
			SupportsTelemedicine: false,
		},
		{
			ID:                   "doctor_7",
			Name:                 "Dra. Sofía Herrera",
			Specialty:            "Ginecología",
			Rating:               4.8,
			Reviews:              142,
			Experience:           16,
			Location:             "Clínica de la Mujer",
			IsAvailable:          true,
			Price:                60,
			Schedule:             model.TimeSlots{"09:00", "10:00", "12:00", "14:00", "15:00"},
			Description:          "Ginecóloga y obstetra con experiencia en control prenatal, planificación familiar y salud reproductiva.",
			PhoneNumber:          "+51 987 654 327",
			SupportsTelemedicine: true,
		},
		{
			ID:                   "doctor_8",
			Name:                 "Dr. Andrés Castillo",
			Specialty:            "Oftalmología",
			Rating:               4.5,
			Reviews:              76,
			Experience:           9,
			Location:             "Centro Oftalmológico",
			IsAvailable:          false,
			Price:                50,
			Schedule:             model.TimeSlots{"08:00", "10:00", "11:00", "16:00"},
			Description:          "Oftalmólogo dedicado al diagnóstico y tratamiento de errores refractivos, cataratas y glaucoma.",
			PhoneNumber:          "+51 987 654 328",
			SupportsTelemedicine: false,
		},
		{
			ID:                   "doctor_9",
			Name:                 "Dra. Valeria Rojas",
			Specialty:            "Psiquiatría",
			Rating:               4.8,
			Reviews:              110,
			Experience:           13,
			Location:             "Clínica San Rafael",
			IsAvailable:          true,
			Price:                65,
			Schedule:             model.TimeSlots{"10:00", "11:00", "13:00", "15:00", "17:00"},
			Description:          "Psiquiatra con enfoque en trastornos de ansiedad, depresión y acompañamiento terapéutico continuo.",
			PhoneNumber:          "+51 987 654 329",
			SupportsTelemedicine: true,
		},
		{
			ID:                   "doctor_10",
			Name:                 "Dr. Ricardo Flores",
			Specialty:            "Endocrinología",
			Rating:               4.7,
			Reviews:              93,
			Experience:           12,
			Location:             "Hospital Metropolitano",
			IsAvailable:          true,
			Price:                58,
			Schedule:             model.TimeSlots{"08:00", "09:00", "10:00", "14:00"},
			Description:          "Endocrinólogo especialista en diabetes, tiroides y trastornos metabólicos.",
			PhoneNumber:          "+51 987 654 330",
			SupportsTelemedicine: true,
		},
		{
			ID:                   "doctor_11",
			Name:                 "Dra. Carmen Díaz",
			Specialty:            "Gastroenterología",
			Rating:               4.6,
			Reviews:              81,
			Experience:           10,
			Location:             "Clínica del Sol",
			IsAvailable:          true,
			Price:                55,
			Schedule:             model.TimeSlots{"09:00", "11:00", "13:00", "15:00", "16:00"},
			Description:          "Gastroenteróloga con experiencia en endoscopía digestiva y manejo de enfermedades gastrointestinales.",
			PhoneNumber:          "+51 987 654 331",
			SupportsTelemedicine: false,
		},
		{
			ID:                   "doctor_12",
			Name:                 "Dr. Fernando Vargas",
			Specialty:            "Otorrinolaringología",
			Rating:               4.4,
			Reviews:              64,
			Experience:           8,
			Location:             "Hospital Central",
			IsAvailable:          false,
			Price:                48,
			Schedule:             model.TimeSlots{"08:00", "09:00", "14:00", "15:00"},
			Description:          "Otorrinolaringólogo dedicado al tratamiento de afecciones de oído, nariz y garganta en adultos y niños.",
			PhoneNumber:          "+51 987 654 332",
			SupportsTelemedicine: false,
		},
		{
			ID:                   "doctor_13",
			Name:                 "Dra. Patricia Mendoza",
			Specialty:            "Nutrición",
			Rating:               4.8,
			Reviews:              118,
			Experience:           11,
			Location:             "Centro de Nutrición Integral",
			IsAvailable:          true,
			Price:                42,
			Schedule:             model.TimeSlots{"09:00", "10:00", "11:00", "15:00", "16:00", "17:00"},
			Description:          "Nutricionista clínica con enfoque en planes alimentarios personalizados, control de peso y nutrición deportiva.",
			PhoneNumber:          "+51 987 654 333",
			SupportsTelemedicine: true,
		},
	}
}
