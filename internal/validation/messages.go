package validation

// User-facing messages shared by validators, services and handlers.
const (
	MsgFieldsIncorrect   = "fields are not filled in correctly"
	MsgURLIncorrect      = "URL is not filled in correctly"
	MsgDataNotChanged    = "data has not changed"
	MsgDataNotDeleted    = "data was not deleted"
	MsgDataNotFound      = "data does not exist"
	MsgDataAlreadyUsed   = "is already in use"
	MsgLimitStringLength = "exceeds the maximum length of"
	MsgInvalidQuillDelta = "is not a valid Quill Delta document"

	MsgUserNotSignedIn    = "user is not signed in"
	MsgUserNotFound       = "user does not exist"
	MsgUserBanned         = "your account has been banned, please contact support"
	MsgPermissionDenied   = "you do not have permission to access this resource"
	MsgExpiredToken       = "token has expired"
	MsgInvalidToken       = "invalid token"
	MsgLoginFailed        = "user does not exist or password is incorrect"
	MsgNotAdminLogin      = "you do not have permission to sign in to this system"
	MsgIsBannedNotBoolean = "is_banned must be a boolean"

	MsgEmailNotRule    = "email does not match the required format"
	MsgPasswordNotRule = "password must be 8-16 letters or digits with at least one lowercase letter, one uppercase letter and one digit"

	MsgCouponQuantityZero       = "coupon quantity must be greater than 0"
	MsgCouponStartBeforeNow     = "coupon start date must be later than now"
	MsgCouponEndBeforeStart     = "coupon end date must be later than the start date"
	MsgCouponDistributedAtCap   = "coupon quantity must be greater than the distributed quantity"
	MsgCouponDistributedOverCap = "coupon distributed quantity must not exceed the quantity"
	MsgCouponDateFormat         = "coupon dates must be YYYY-MM-DD or RFC3339 timestamps"
	MsgProductImagesOverFive    = "a product may not have more than 5 images"
	MsgOrderStatusNotRule       = "order status must be one of paid, pending, canceled"
)
