package isotope

import "math"

// Generated from the NIST Atomic Weights and Isotopic Compositions dataset,
// restricted to elements that occur in proteomics reference data.

func element(number int, symbol string, principalMass, standardWeight float64) Isotope {
	return Isotope{
		Number:    number,
		Symbol:    symbol,
		Mass:      principalMass,
		Abundance: math.NaN(),
		Average:   standardWeight,
	}
}

func iso(number, massNumber int, symbol string, mass, abundance float64, principal bool) Isotope {
	return Isotope{
		Number:     number,
		MassNumber: massNumber,
		Symbol:     symbol,
		Mass:       mass,
		Abundance:  abundance,
		Average:    mass,
		Principal:  principal,
	}
}

func elements() []Isotope {
	return []Isotope{
		element(1, "H", 1.00782503207, 1.008),
		iso(1, 1, "H", 1.00782503207, 0.999885, true),
		iso(1, 2, "H", 2.01410177812, 0.000115, false),
		iso(1, 3, "H", 3.0160492779, 0, false),

		element(3, "Li", 7.0160034366, 6.94),
		iso(3, 6, "Li", 6.0151228874, 0.0759, false),
		iso(3, 7, "Li", 7.0160034366, 0.9241, true),

		element(5, "B", 11.00930536, 10.81),
		iso(5, 10, "B", 10.01293695, 0.199, false),
		iso(5, 11, "B", 11.00930536, 0.801, true),

		element(6, "C", 12.0, 12.011),
		iso(6, 12, "C", 12.0, 0.9893, true),
		iso(6, 13, "C", 13.00335483507, 0.0107, false),
		iso(6, 14, "C", 14.0032419884, 0, false),

		element(7, "N", 14.00307400443, 14.007),
		iso(7, 14, "N", 14.00307400443, 0.99636, true),
		iso(7, 15, "N", 15.00010889888, 0.00364, false),

		element(8, "O", 15.99491461957, 15.999),
		iso(8, 16, "O", 15.99491461957, 0.99757, true),
		iso(8, 17, "O", 16.9991317565, 0.00038, false),
		iso(8, 18, "O", 17.99915961286, 0.00205, false),

		element(9, "F", 18.99840316273, 18.998403163),
		iso(9, 19, "F", 18.99840316273, 1, true),

		element(11, "Na", 22.989769282, 22.98976928),
		iso(11, 23, "Na", 22.989769282, 1, true),

		element(12, "Mg", 23.985041697, 24.305),
		iso(12, 24, "Mg", 23.985041697, 0.7899, true),
		iso(12, 25, "Mg", 24.985836976, 0.1, false),
		iso(12, 26, "Mg", 25.982592968, 0.1101, false),

		element(13, "Al", 26.98153853, 26.9815385),
		iso(13, 27, "Al", 26.98153853, 1, true),

		element(14, "Si", 27.97692653465, 28.085),
		iso(14, 28, "Si", 27.97692653465, 0.92223, true),
		iso(14, 29, "Si", 28.9764946649, 0.04685, false),
		iso(14, 30, "Si", 29.973770136, 0.03092, false),

		element(15, "P", 30.97376199842, 30.973761998),
		iso(15, 31, "P", 30.97376199842, 1, true),

		element(16, "S", 31.9720711744, 32.06),
		iso(16, 32, "S", 31.9720711744, 0.9499, true),
		iso(16, 33, "S", 32.9714589098, 0.0075, false),
		iso(16, 34, "S", 33.967867004, 0.0425, false),
		iso(16, 36, "S", 35.96708071, 0.0001, false),

		element(17, "Cl", 34.968852682, 35.45),
		iso(17, 35, "Cl", 34.968852682, 0.7576, true),
		iso(17, 37, "Cl", 36.965902602, 0.2424, false),

		element(19, "K", 38.9637064864, 39.0983),
		iso(19, 39, "K", 38.9637064864, 0.932581, true),
		iso(19, 40, "K", 39.963998166, 0.000117, false),
		iso(19, 41, "K", 40.9618252579, 0.067302, false),

		element(20, "Ca", 39.962590863, 40.078),
		iso(20, 40, "Ca", 39.962590863, 0.96941, true),
		iso(20, 42, "Ca", 41.95861783, 0.00647, false),
		iso(20, 43, "Ca", 42.95876644, 0.00135, false),
		iso(20, 44, "Ca", 43.95548156, 0.02086, false),
		iso(20, 48, "Ca", 47.95252276, 0.00187, false),

		element(25, "Mn", 54.93804391, 54.938044),
		iso(25, 55, "Mn", 54.93804391, 1, true),

		element(26, "Fe", 55.93493633, 55.845),
		iso(26, 54, "Fe", 53.93960899, 0.05845, false),
		iso(26, 56, "Fe", 55.93493633, 0.91754, true),
		iso(26, 57, "Fe", 56.93539284, 0.02119, false),
		iso(26, 58, "Fe", 57.93327443, 0.00282, false),

		element(27, "Co", 58.93319429, 58.933194),
		iso(27, 59, "Co", 58.93319429, 1, true),

		element(28, "Ni", 57.93534241, 58.6934),
		iso(28, 58, "Ni", 57.93534241, 0.68077, true),
		iso(28, 60, "Ni", 59.93078588, 0.26223, false),
		iso(28, 61, "Ni", 60.93105557, 0.011399, false),
		iso(28, 62, "Ni", 61.92834537, 0.036346, false),
		iso(28, 64, "Ni", 63.92796682, 0.009255, false),

		element(29, "Cu", 62.92959772, 63.546),
		iso(29, 63, "Cu", 62.92959772, 0.6915, true),
		iso(29, 65, "Cu", 64.9277897, 0.3085, false),

		element(30, "Zn", 63.92914201, 65.38),
		iso(30, 64, "Zn", 63.92914201, 0.4917, true),
		iso(30, 66, "Zn", 65.92603381, 0.2773, false),
		iso(30, 67, "Zn", 66.92712775, 0.0404, false),
		iso(30, 68, "Zn", 67.92484455, 0.1845, false),
		iso(30, 70, "Zn", 69.9253192, 0.0061, false),

		element(33, "As", 74.92159457, 74.921595),
		iso(33, 75, "As", 74.92159457, 1, true),

		element(34, "Se", 79.9165218, 78.971),
		iso(34, 74, "Se", 73.922475934, 0.0089, false),
		iso(34, 76, "Se", 75.919213704, 0.0937, false),
		iso(34, 77, "Se", 76.919914154, 0.0763, false),
		iso(34, 78, "Se", 77.91730928, 0.2377, false),
		iso(34, 80, "Se", 79.9165218, 0.4961, true),
		iso(34, 82, "Se", 81.9166995, 0.0873, false),

		element(35, "Br", 78.9183376, 79.904),
		iso(35, 79, "Br", 78.9183376, 0.5069, true),
		iso(35, 81, "Br", 80.9162897, 0.4931, false),

		element(53, "I", 126.9044719, 126.90447),
		iso(53, 127, "I", 126.9044719, 1, true),
	}
}
