package repository

const (
	selectUser = `SELECT id, first_name, last_name, email, password_hash, role_id FROM users`

	selectLike = `SELECT id, user_id, vacation_id FROM likes`

	selectVacation = `SELECT
		v.id,
		v.country_id,
		v.description,
		v.start_date,
		v.end_date,
		v.price,
		v.photo_path,
		c.name,
		COUNT(l.id)
	FROM vacations v
	JOIN countries c ON c.id = v.country_id
	LEFT JOIN likes l ON l.vacation_id = v.id`

	groupVacation = ` GROUP BY v.id, c.name`
)
