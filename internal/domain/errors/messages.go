package errors

// Field error messages. Clients match on these strings, keep them stable.
const (
	MsgRequired         = "This field is required."
	MsgBlank            = "This field may not be blank."
	MsgNull             = "This field may not be null."
	MsgMaxLength        = "Ensure this field has no more than %d characters."
	MsgInvalidEmail     = "Enter a valid email address."
	MsgInvalidString    = "Not a valid string."
	MsgInvalidBoolean   = "Must be a valid boolean."
	MsgInvalidInteger   = "A valid integer is required."
	MsgInvalidNumber    = "A valid number is required."
	MsgInvalidList      = "Expected a list of items but got type \"%s\"."
	MsgMaxDigits        = "Ensure that there are no more than %d digits in total."
	MsgMaxDecimalPlaces = "Ensure that there are no more than %d decimal places."
	MsgMaxWholeDigits   = "Ensure that there are no more than %d digits before the decimal point."
	MsgInvalidDate      = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	MsgInvalidTime      = "Time has wrong format. Use one of these formats instead: hh:mm[:ss[.uuuuuu]]."
	MsgInvalidChoice    = "\"%v\" is not a valid choice."
	MsgInvalidPK        = "Invalid pk \"%s\" - object does not exist."
	MsgIncorrectPKType  = "Incorrect type. Expected pk value, received %s."
	MsgFilterChoice     = "Select a valid choice. %s is not one of the available choices."
	MsgInvalidJSON      = "JSON parse error - %s"

	MsgHourlyRatePositive = "Hourly rate must be greater than 0."
	MsgEmailTaken         = "An employee with this email already exists."
	MsgSkillNameTaken     = "skill with this name already exists."
	MsgEndBeforeStart     = "End time must be after start time."
	MsgSlotTaken          = "The fields employee, day_of_week, start_time must make a unique set."
)
