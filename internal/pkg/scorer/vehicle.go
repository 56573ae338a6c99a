package scorer

const (
	vehicleAny = "any"

	vehicleExact      = 1.0
	vehicleCompatible = 0.7
	vehicleOther      = 0.3
)

var vehicleGroups = [][]string{
	{"car", "suv", "sedan"},
	{"pickup", "van", "small_truck"},
	{"truck", "heavy_truck", "trailer"},
	{"van", "delivery_truck"},
}

var compatibleVehicles = buildVehicleCompatibility(vehicleGroups)

func buildVehicleCompatibility(groups [][]string) map[string]map[string]struct{} {
	compatible := make(map[string]map[string]struct{})
	for _, group := range groups {
		for _, a := range group {
			for _, b := range group {
				if a == b {
					continue
				}
				if compatible[a] == nil {
					compatible[a] = make(map[string]struct{})
				}
				compatible[a][b] = struct{}{}
			}
		}
	}
	return compatible
}

// VehicleScore совместимость желаемого типа транспорта с предложенным.
func VehicleScore(preferred, offered string) float64 {
	p, o := normalizeVehicleTag(preferred), normalizeVehicleTag(offered)
	if isAnyVehicle(p) || isAnyVehicle(o) || p == o {
		return vehicleExact
	}
	if _, ok := compatibleVehicles[p][o]; ok {
		return vehicleCompatible
	}
	return vehicleOther
}

func isAnyVehicle(tag string) bool {
	return tag == "" || tag == vehicleAny
}
