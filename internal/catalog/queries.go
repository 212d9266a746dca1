package catalog

// Defaults returns the shipped analytical query set. All entries are
// parameterless aggregations over traffic_stops; rates are computed with
// decimal division (never integer truncation) as a percentage in [0,100].
// Night is hours 0-5 inclusive. The RANK() windows carry violation ASC as an
// explicit secondary key so tied rates rank reproducibly across runs.
func Defaults() []Entry {
	return []Entry{
		{
			Name: "Top 10 vehicles in drug-related stops",
			SQL: `SELECT vehicle_number, COUNT(*) AS stop_count
FROM traffic_stops
WHERE drugs_related_stop = TRUE
GROUP BY vehicle_number
ORDER BY stop_count DESC
LIMIT 10`,
		},
		{
			Name: "Which Vehicles Were Most Frequently Searched",
			SQL: `SELECT vehicle_number, COUNT(*) AS search_count
FROM traffic_stops
WHERE search_conducted = TRUE
GROUP BY vehicle_number
ORDER BY search_count DESC
LIMIT 10`,
		},
		{
			Name: "Which Driver Age Group Had the Highest Arrest Rate",
			SQL: `SELECT driver_age, COUNT(*) AS arrest_count
FROM traffic_stops
WHERE is_arrested = TRUE
GROUP BY driver_age
ORDER BY arrest_count DESC
LIMIT 10`,
		},
		{
			Name: "Gender Distribution of Drivers Stopped in Each Country",
			SQL: `SELECT country_name, driver_gender, COUNT(*) AS count
FROM traffic_stops
GROUP BY country_name, driver_gender
ORDER BY country_name, count DESC`,
		},
		{
			Name: "Which Race and Gender Combination Has the Highest Search Rate",
			SQL: `SELECT driver_race, driver_gender, COUNT(*) AS search_count
FROM traffic_stops
WHERE search_conducted = TRUE
GROUP BY driver_race, driver_gender
ORDER BY search_count DESC
LIMIT 10`,
		},
		{
			Name: "What Time of Day Sees the Most Traffic Stops",
			SQL: `SELECT EXTRACT(HOUR FROM stop_time::time) AS hour_of_day, COUNT(*) AS stop_count
FROM traffic_stops
GROUP BY hour_of_day
ORDER BY stop_count DESC
LIMIT 10`,
		},
		{
			Name: "Average Stop Duration for Different Violations",
			SQL: `SELECT violation, AVG(
    CASE
        WHEN stop_duration = '<5 min' THEN 5
        WHEN stop_duration = '6-15 min' THEN 10
        WHEN stop_duration = '16-30 min' THEN 23
        ELSE 45
    END
) AS avg_duration
FROM traffic_stops
GROUP BY violation
ORDER BY avg_duration DESC`,
		},
		{
			Name: "Are Night Stops More Likely to Lead to Arrests",
			SQL: `SELECT
    CASE
        WHEN EXTRACT(HOUR FROM stop_time::time) BETWEEN 0 AND 5 THEN 'Night'
        ELSE 'Day'
    END AS time_of_day,
    COUNT(CASE WHEN is_arrested = TRUE THEN 1 END) * 100.0 / COUNT(*) AS arrest_rate
FROM traffic_stops
GROUP BY time_of_day`,
		},
		{
			Name: "Violations Most Associated with Searches or Arrests",
			SQL: `SELECT violation,
       COUNT(CASE WHEN search_conducted = TRUE THEN 1 END) AS search_count,
       COUNT(CASE WHEN is_arrested = TRUE THEN 1 END) AS arrest_count
FROM traffic_stops
GROUP BY violation
ORDER BY search_count DESC, arrest_count DESC
LIMIT 10`,
		},
		{
			Name: "Violations Most Common Among Younger Drivers (<25)",
			SQL: `SELECT violation, COUNT(*) AS count
FROM traffic_stops
WHERE driver_age < 25
GROUP BY violation
ORDER BY count DESC
LIMIT 10`,
		},
		{
			Name: "Violations Rarely Leading to Search or Arrest",
			SQL: `SELECT
    violation,
    COUNT(*) AS total_stops,
    COUNT(CASE WHEN search_conducted = TRUE THEN 1 END) AS search_count,
    COUNT(CASE WHEN is_arrested = TRUE THEN 1 END) AS arrest_count
FROM traffic_stops
GROUP BY violation
ORDER BY total_stops DESC`,
		},
		{
			Name: "Countries Reporting Highest Rate of Drug-Related Stops",
			SQL: `SELECT country_name, COUNT(*) AS drug_stop_count
FROM traffic_stops
WHERE drugs_related_stop = TRUE
GROUP BY country_name
ORDER BY drug_stop_count DESC
LIMIT 10`,
		},
		{
			Name: "Arrest Rate by Country and Violation",
			SQL: `SELECT country_name, violation,
       COUNT(*) AS total_stops,
       COUNT(CASE WHEN is_arrested = TRUE THEN 1 END) * 100.0 / COUNT(*) AS arrest_rate
FROM traffic_stops
GROUP BY country_name, violation
ORDER BY arrest_rate DESC
LIMIT 10`,
		},
		{
			Name: "Countries with Most Stops Where Search Was Conducted",
			SQL: `SELECT country_name, COUNT(*) AS search_count
FROM traffic_stops
WHERE search_conducted = TRUE
GROUP BY country_name
ORDER BY search_count DESC
LIMIT 10`,
		},
		{
			Name: "Driver Violation Trends Based on Age and Race",
			SQL: `SELECT driver_age, driver_race, violation, COUNT(*) AS count
FROM traffic_stops
GROUP BY driver_age, driver_race, violation
ORDER BY count DESC
LIMIT 10`,
		},
		{
			Name: "Number of Stops by Year, Month, Hour",
			SQL: `SELECT
    EXTRACT(YEAR FROM stop_date) AS year,
    EXTRACT(MONTH FROM stop_date) AS month,
    EXTRACT(HOUR FROM stop_time::time) AS hour,
    COUNT(*) AS stop_count
FROM traffic_stops
WHERE stop_date IS NOT NULL
GROUP BY year, month, hour
ORDER BY year, month, hour`,
		},
		{
			Name: "Violations with High Search and Arrest Rates",
			SQL: `SELECT
    violation,
    COUNT(*) AS total_stops,
    SUM(CASE WHEN search_conducted = TRUE THEN 1 ELSE 0 END) AS search_count,
    ROUND(SUM(CASE WHEN search_conducted = TRUE THEN 1 ELSE 0 END)::decimal * 100 / COUNT(*), 2) AS search_rate,
    SUM(CASE WHEN is_arrested = TRUE THEN 1 ELSE 0 END) AS arrest_count,
    ROUND(SUM(CASE WHEN is_arrested = TRUE THEN 1 ELSE 0 END)::decimal * 100 / COUNT(*), 2) AS arrest_rate,
    RANK() OVER (ORDER BY SUM(CASE WHEN search_conducted = TRUE THEN 1 ELSE 0 END)::decimal / COUNT(*) DESC, violation ASC) AS search_rank,
    RANK() OVER (ORDER BY SUM(CASE WHEN is_arrested = TRUE THEN 1 ELSE 0 END)::decimal / COUNT(*) DESC, violation ASC) AS arrest_rank
FROM traffic_stops
GROUP BY violation
ORDER BY search_rate DESC, arrest_rate DESC, violation ASC`,
		},
		{
			Name: "Driver Demographics by Country (Age, Gender, and Race)",
			SQL: `SELECT
    country_name,
    driver_age,
    driver_gender,
    driver_race,
    COUNT(*) AS stop_count
FROM traffic_stops
GROUP BY country_name, driver_age, driver_gender, driver_race
ORDER BY country_name, stop_count DESC`,
		},
		{
			Name: "Top 5 Violations with Highest Arrest Rates",
			SQL: `SELECT
    violation,
    COUNT(*) AS total_stops,
    SUM(CASE WHEN is_arrested = TRUE THEN 1 ELSE 0 END) AS total_arrests,
    ROUND(SUM(CASE WHEN is_arrested = TRUE THEN 1 ELSE 0 END)::decimal * 100 / COUNT(*), 2) AS arrest_rate
FROM traffic_stops
WHERE is_arrested IS NOT NULL
GROUP BY violation
ORDER BY arrest_rate DESC
LIMIT 5`,
		},
	}
}
