package dataset

// Passenger table column names
const (
	ColPassengerID = "PassengerId"
	ColSurvived    = "Survived"
	ColPclass      = "Pclass"
	ColName        = "Name"
	ColSex         = "Sex"
	ColAge         = "Age"
	ColSibSp       = "SibSp"
	ColParch       = "Parch"
	ColTicket      = "Ticket"
	ColFare        = "Fare"
	ColCabin       = "Cabin"
	ColEmbarked    = "Embarked"
)

// RequiredColumns lists the columns every input file must carry
var RequiredColumns = []string{
	ColPassengerID, ColSurvived, ColPclass, ColName, ColSex, ColAge,
	ColSibSp, ColParch, ColTicket, ColFare, ColCabin, ColEmbarked,
}

// NumericColumns lists the schema columns that must infer as numeric
var NumericColumns = []string{
	ColPassengerID, ColSurvived, ColPclass, ColAge, ColSibSp, ColParch, ColFare,
}
