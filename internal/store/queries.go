package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Station queries.
const (
	queryCreateStation = `
		INSERT INTO stations (
			code, name, type, operator, latitude, longitude,
			measures_tide, measures_waves, measures_weather,
			active, created_at, updated_at
		) VALUES (
			@code, @name, @type, @operator, @latitude, @longitude,
			@measures_tide, @measures_waves, @measures_weather,
			@active, now(), now()
		)
		RETURNING id, created_at, updated_at`

	baseStationSelect = `
		SELECT id, code, name, type, operator, latitude, longitude,
			measures_tide, measures_waves, measures_weather,
			active, last_data_at, created_at, updated_at
		FROM stations`

	queryGetStation       = baseStationSelect + ` WHERE id = $1`
	queryGetStationByCode = baseStationSelect + ` WHERE code = $1`

	queryListStationsAll    = baseStationSelect + ` ORDER BY code`
	queryListStationsActive = baseStationSelect + ` WHERE active = true ORDER BY code`

	queryUpdateStation = `
		UPDATE stations SET
			code = @code,
			name = @name,
			type = @type,
			operator = @operator,
			latitude = @latitude,
			longitude = @longitude,
			measures_tide = @measures_tide,
			measures_waves = @measures_waves,
			measures_weather = @measures_weather,
			active = @active,
			updated_at = now()
		WHERE id = @id`

	queryDeleteStation = `DELETE FROM stations WHERE id = $1`

	querySetStationActive = `
		UPDATE stations SET
			active = $2,
			updated_at = now()
		WHERE id = $1`

	queryTouchStationData = `
		UPDATE stations SET last_data_at = $2 WHERE id = $1`

	queryCountStationsReporting = `
		SELECT
			COUNT(*) FILTER (WHERE last_data_at IS NOT NULL AND last_data_at > $1) AS reporting,
			COUNT(*) AS active
		FROM stations
		WHERE active = true`
)

// Reading queries.
const (
	queryInsertTideReading = `
		INSERT INTO tide_readings (station_id, observed_at, water_level, predicted_level, quality, source)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (station_id, observed_at) DO UPDATE SET
			water_level = EXCLUDED.water_level,
			predicted_level = EXCLUDED.predicted_level,
			quality = EXCLUDED.quality,
			source = EXCLUDED.source
		RETURNING id`

	queryInsertWeatherReading = `
		INSERT INTO weather_readings (
			station_id, observed_at, temperature_c, humidity_pct, pressure_hpa,
			wind_speed_kmh, wind_direction_deg, precipitation_mm, visibility_km,
			condition, source
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (station_id, observed_at) DO UPDATE SET
			temperature_c = EXCLUDED.temperature_c,
			humidity_pct = EXCLUDED.humidity_pct,
			pressure_hpa = EXCLUDED.pressure_hpa,
			wind_speed_kmh = EXCLUDED.wind_speed_kmh,
			wind_direction_deg = EXCLUDED.wind_direction_deg,
			precipitation_mm = EXCLUDED.precipitation_mm,
			visibility_km = EXCLUDED.visibility_km,
			condition = EXCLUDED.condition,
			source = EXCLUDED.source
		RETURNING id`

	queryInsertWaveReading = `
		INSERT INTO wave_readings (station_id, observed_at, height_m, period_s, direction_deg, source)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (station_id, observed_at) DO UPDATE SET
			height_m = EXCLUDED.height_m,
			period_s = EXCLUDED.period_s,
			direction_deg = EXCLUDED.direction_deg,
			source = EXCLUDED.source
		RETURNING id`

	baseTideSelect = `
		SELECT id, station_id, observed_at, water_level, predicted_level, quality, source
		FROM tide_readings`

	queryLatestTideReading = baseTideSelect + `
		WHERE station_id = $1
		ORDER BY observed_at DESC
		LIMIT 1`

	queryListTideReadings = baseTideSelect + `
		WHERE station_id = $1 AND observed_at >= $2
		ORDER BY observed_at DESC
		LIMIT $3`

	baseWeatherSelect = `
		SELECT id, station_id, observed_at, temperature_c, humidity_pct, pressure_hpa,
			wind_speed_kmh, wind_direction_deg, precipitation_mm, visibility_km,
			condition, source
		FROM weather_readings`

	queryLatestWeatherReading = baseWeatherSelect + `
		WHERE station_id = $1
		ORDER BY observed_at DESC
		LIMIT 1`

	queryListWeatherReadings = baseWeatherSelect + `
		WHERE station_id = $1 AND observed_at >= $2
		ORDER BY observed_at DESC
		LIMIT $3`

	queryLatestWaveReading = `
		SELECT id, station_id, observed_at, height_m, period_s, direction_deg, source
		FROM wave_readings
		WHERE station_id = $1
		ORDER BY observed_at DESC
		LIMIT 1`
)

// Alert queries.
const (
	queryCreateAlert = `
		INSERT INTO alerts (
			type, severity, title, description,
			location_name, latitude, longitude, radius_km,
			source_station, source, metadata, issued_at, expires_at, active
		) VALUES (
			@type, @severity, @title, @description,
			@location_name, @latitude, @longitude, @radius_km,
			@source_station, @source, @metadata, now(), @expires_at, true
		)
		ON CONFLICT (type, source_station)
			WHERE active = true AND source_station IS NOT NULL
			DO UPDATE SET
				severity = EXCLUDED.severity,
				title = EXCLUDED.title,
				description = EXCLUDED.description,
				metadata = EXCLUDED.metadata,
				expires_at = EXCLUDED.expires_at,
				issued_at = now()
		RETURNING id, issued_at`

	queryGetAlert = `
		SELECT id, type, severity, title, description,
			location_name, latitude, longitude, radius_km,
			source_station, source, metadata, issued_at, expires_at, active,
			acknowledged_at, acknowledged_by, resolved_at, resolved_by, resolution_notes
		FROM alerts
		WHERE id = $1`

	queryListActiveAlerts = `
		SELECT id, type, severity, title, description,
			location_name, latitude, longitude, radius_km,
			source_station, source, metadata, issued_at, expires_at, active,
			acknowledged_at, acknowledged_by, resolved_at, resolved_by, resolution_notes
		FROM alerts
		WHERE active = true
		ORDER BY issued_at DESC`

	queryHasRecentAlert = `
		SELECT EXISTS (
			SELECT 1 FROM alerts
			WHERE type = $1
			  AND ($2::uuid IS NULL OR source_station = $2)
			  AND active = true
			  AND issued_at > $3
		)`

	queryAcknowledgeAlert = `
		UPDATE alerts SET
			acknowledged_at = now(),
			acknowledged_by = $2
		WHERE id = $1 AND acknowledged_at IS NULL`

	queryResolveAlert = `
		UPDATE alerts SET
			active = false,
			resolved_at = now(),
			resolved_by = $2,
			resolution_notes = $3
		WHERE id = $1 AND resolved_at IS NULL`

	queryExpireAlerts = `
		UPDATE alerts SET
			active = false,
			resolved_at = now(),
			resolved_by = 'system',
			resolution_notes = 'expired'
		WHERE active = true AND expires_at IS NOT NULL AND expires_at < now()`

	queryAlertStats = `
		SELECT severity, type, active, COUNT(*)
		FROM alerts
		WHERE issued_at >= $1
		GROUP BY severity, type, active`
)

// Subscription queries.
const (
	queryCreateSubscription = `
		INSERT INTO subscriptions (
			name, email, phone, device_token,
			latitude, longitude, radius_km,
			alert_types, min_severity, channels, active, created_at, updated_at
		) VALUES (
			@name, @email, @phone, @device_token,
			@latitude, @longitude, @radius_km,
			@alert_types, @min_severity, @channels, @active, now(), now()
		)
		RETURNING id, created_at, updated_at`

	baseSubscriptionSelect = `
		SELECT id, name, email, phone, device_token,
			latitude, longitude, radius_km,
			alert_types, min_severity, channels, active, created_at, updated_at
		FROM subscriptions`

	queryGetSubscription = baseSubscriptionSelect + ` WHERE id = $1`

	queryListSubscriptionsAll    = baseSubscriptionSelect + ` ORDER BY created_at DESC`
	queryListSubscriptionsActive = baseSubscriptionSelect + ` WHERE active = true ORDER BY created_at DESC`

	queryListSubscriptionCandidates = baseSubscriptionSelect + `
		WHERE active = true
		  AND latitude BETWEEN $1 AND $2
		  AND longitude BETWEEN $3 AND $4`

	queryUpdateSubscription = `
		UPDATE subscriptions SET
			name = @name,
			email = @email,
			phone = @phone,
			device_token = @device_token,
			latitude = @latitude,
			longitude = @longitude,
			radius_km = @radius_km,
			alert_types = @alert_types,
			min_severity = @min_severity,
			channels = @channels,
			active = @active,
			updated_at = now()
		WHERE id = @id`

	queryDeleteSubscription = `DELETE FROM subscriptions WHERE id = $1`

	querySetSubscriptionActive = `
		UPDATE subscriptions SET
			active = $2,
			updated_at = now()
		WHERE id = $1`
)

// Notification queries.
const (
	queryEnqueueNotification = `
		INSERT INTO notifications (
			alert_id, subscription_id, channel, recipient,
			status, attempts, max_attempts, next_attempt_at, created_at
		) VALUES ($1, $2, $3, $4, 'pending', 0, $5, now(), now())
		ON CONFLICT (alert_id, subscription_id, channel) DO NOTHING
		RETURNING id, created_at`

	queryListDueNotifications = `
		SELECT id, alert_id, subscription_id, channel, recipient, status,
			attempts, max_attempts, next_attempt_at, last_error, sent_at, created_at
		FROM notifications
		WHERE status = 'pending' AND next_attempt_at <= now()
		ORDER BY next_attempt_at ASC
		LIMIT $1`

	queryMarkNotificationSent = `
		UPDATE notifications SET
			status = 'sent',
			attempts = attempts + 1,
			sent_at = now(),
			last_error = ''
		WHERE id = $1`

	queryMarkNotificationFailed = `
		UPDATE notifications SET
			status = 'failed',
			attempts = attempts + 1,
			last_error = $2
		WHERE id = $1`

	queryRescheduleNotification = `
		UPDATE notifications SET
			attempts = attempts + 1,
			last_error = $2,
			next_attempt_at = $3
		WHERE id = $1`

	queryNotificationSummary = `
		SELECT status, COUNT(*)
		FROM notifications
		WHERE alert_id = $1
		GROUP BY status`
)

// Scheduler queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name)
		VALUES ($1)
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at  = now(),
			status        = $2,
			error_text    = $3,
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryListLatestJobRuns = `
		SELECT DISTINCT ON (job_name)
			id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		ORDER BY job_name, started_at DESC`

	queryMarkStaleJobRunsCrashed = `
		UPDATE job_runs SET
			status       = 'crashed',
			completed_at = now()
		WHERE status = 'running' AND started_at < $1`

	queryDeleteOldJobRuns = `
		DELETE FROM job_runs WHERE started_at < now() - interval '30 days'`

	queryAcquireSchedulerLock = `
		INSERT INTO scheduler_locks (job_name, lock_holder, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_name) DO UPDATE
			SET locked_at   = now(),
				lock_holder = EXCLUDED.lock_holder,
				expires_at  = EXCLUDED.expires_at
			WHERE scheduler_locks.expires_at < now()
		RETURNING job_name`

	queryReleaseSchedulerLock = `
		DELETE FROM scheduler_locks WHERE job_name = $1 AND lock_holder = $2`
)

// System state query.
const querySystemState = `
	SELECT
		(SELECT COUNT(*) FROM stations)                                             AS stations_total,
		(SELECT COUNT(*) FROM stations WHERE active = true)                         AS stations_active,
		(SELECT COUNT(*) FROM stations
			WHERE active = true AND last_data_at > now() - interval '30 minutes')   AS stations_reporting,
		(SELECT COUNT(*) FROM alerts WHERE active = true)                           AS alerts_active,
		(SELECT COUNT(*) FROM alerts
			WHERE active = true AND acknowledged_at IS NULL)                        AS alerts_unacknowledged,
		(SELECT COUNT(*) FROM subscriptions WHERE active = true)                    AS subscriptions_active,
		(SELECT COUNT(*) FROM notifications WHERE status = 'pending')               AS notifications_pending,
		(SELECT COUNT(*) FROM notifications WHERE status = 'failed')                AS notifications_failed,
		(SELECT COUNT(*) FROM tide_readings)                                        AS tide_readings_total,
		(SELECT COUNT(*) FROM weather_readings)                                     AS weather_readings_total`
