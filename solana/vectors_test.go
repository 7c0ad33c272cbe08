package solana

// Golden vectors checked against mainnet wallets
const (
	skiMnemonic             = "ski seven shuffle amazing tooth net useful asthma drive crystal solar glare"
	skiAddress              = "F7xVyQuLzvyUKbMQyrBHaqYGCzHWpmsocn8b7oRUyeC5"
	skiKeypair              = "3NpEaVRpJAQjCxa6RM9zVrBpC7B61ypQJxt8FQM41jKZLi5bDdUnn3yXHyyLcDuFcoQrbECDH7SEiPi2z4j9w9PT"
	elegantMnemonic         = "elegant flat lumber sibling peace convince manage logic crunch pair impact bench"
	elegantAddress          = "sDaZSSKL8BPeAduGRcTudB6Brz5EdxfqUDyVJHr5EAB"
	elegantKeypair          = "4oMuZhcmihwvCpZXGbPbyXVgBzeo9FTvJRBDrkY52EyR1cupGPB1tzgokZV1b983F9c5NmW1v64xPsy59g1N86zK"
	coffeeMnemonic          = "coffee double wise share bridge bird raw light area exact spray dial"
	coffeeAddress           = "9biD1JVeWCPQpWSAGdxGZaNd6VeUm5QYQu9hp2EMnfnp"
	coffeeKeypair           = "2PsFPYS5k1EXfMikpaSgHkeVw1z3pgeQnQRwgCyzXpyAxNbfvbKps3yGbVfkcJ6R5efMFxDtUN7eaXbh13VhffEg"
	miracleMnemonic         = "miracle pizza supply useful steak border same again youth silver access hundred"
	avoidMnemonic           = "avoid cement buddy stay nasty erosion parade fog limb marine season media staff lady torch trust sunny pattern odor harsh lamp bounce van glue"
	avoidKeypair            = "5bxuASQJNxBHicjXBvYmu1VfaAiydsdBxur8MdbBrgjbzWRY2u5PBoFRb3yR85eLr3nafvkb5xQKDxC64ow2vyBP"
	budgetMnemonic          = "budget resource fluid mutual ankle salt demise long burst sting doctor ozone risk magic wrap clap post pole jungle great update air interest abandon"
	budgetKeypair           = "4yVmRRXjMaJB7CBCMFTipraVKhyheGNmyEXkYnw7QXbPDNDj3WkgU1bmknXynGKVHWE9LArczq42CDqv4mXk2es8"
	solTransferBlockhash    = "8ccgXYvhnTaqz2uTcurv9x9PshA714QzqPSxCesyMgng"
	solTransferSmallest     = "AQAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAABAAEDDN1DXJdZtFaZvlIgEqCo94Hfe4zs/k+7zpFgpos4O9h/wdX3dkomxgJlLY6GGcOFWkAa84Cr5zlHAzBgnBfY4QAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAcSF7ZDDOSxTErZg5qfh/hsKRZlwnN81vnzITudOZjnUBAgIAAQwCAAAAAQAAAAAAAAA="
	solTransferNonSmallest  = "AQAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAABAAEDDN1DXJdZtFaZvlIgEqCo94Hfe4zs/k+7zpFgpos4O9h/wdX3dkomxgJlLY6GGcOFWkAa84Cr5zlHAzBgnBfY4QAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAcSF7ZDDOSxTErZg5qfh/hsKRZlwnN81vnzITudOZjnUBAgIAAQwCAAAA6QMAAAAAAAA="
	solTransferOne          = "AQAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAABAAEDDN1DXJdZtFaZvlIgEqCo94Hfe4zs/k+7zpFgpos4O9h/wdX3dkomxgJlLY6GGcOFWkAa84Cr5zlHAzBgnBfY4QAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAcSF7ZDDOSxTErZg5qfh/hsKRZlwnN81vnzITudOZjnUBAgIAAQwCAAAAAMqaOwAAAAA="
	tokenMint               = "MERt85fc5boKw3BW1eYdxonEuJNvXbiMbs6hvheau5K"
	tokenWalletBlockhash    = "CP9EYNGDbYL8BJLyaSzgWJUo18xAVTN4Skgih1CNMkPr"
	tokenWalletTx           = "AQAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAABAAUIf8HV93ZKJsYCZS2OhhnDhVpAGvOAq+c5RwMwYJwX2OHYwlbgG1W3PhF+t7bT+eF63FS+MFT8wfnf5PQkZLoo2eBnCBuplHILX5svG7vBAH64rRZxRrLeWp00k7XmAa4LAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAFLszmR+Ru7+6ZZCcu/til5uK/NREBP7W84x7JjaqQAgbd9uHXZaGT2cvhRs7reawctIXtX1s3kTqM9YV+/wCpDN1DXJdZtFaZvlIgEqCo94Hfe4zs/k+7zpFgpos4O9iMlyWPTiSJ8bs9ECkUjg2DC1oTmdr/EIQEjnvY2+n4WakcpMKhhgAbsC4s1odQyWYl+CzpWbBhFKk81ABxqoyJAgcGAAIGBAMFAQAFBQEEAgAACgwBAAAAAAAAAAA="
	tokenAccountDestination = "dquDQsAZRT2D8E9mpvhpA67jZDwKNRHrE2eGJGca6Lz"
	tokenAccountBlockhash   = "HDcARt8PjyBHwGxopZxfp6Sr2DMamh8Hnm7oeo1467o4"
	tokenAccountTx          = "AQAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAABAAIFf8HV93ZKJsYCZS2OhhnDhVpAGvOAq+c5RwMwYJwX2OEJcDNoAPdW+2JOGibqlZYtKGTkbigRwvKXyy1B2nLVs9jCVuAbVbc+EX63ttP54XrcVL4wVPzB+d/k9CRkuijZBS7M5kfkbu/umWQnLv7YpebivzURAT+1vOMeyY2qkAIG3fbh12Whk9nL4UbO63msHLSF7V9bN5E6jPWFfv8AqfD1uA6rpyMwG2C/uQ5dQN2XLLYNBXV70YDMV8PgbCk/AQQFAgMBAAAKDAEAAAAAAAAAAA=="
	legacyUnsignedTx        = "AQAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAABAAoT0cva94tdeUJahExxXl5yoYrk1nsxlCWaSqvYqqppa6YRmJQz2BPHWeODDKN8Qtx9iPTXJqZBIdulNKq1NcTf7jOzHsTv+PoomuqMlUwBYy4tdkkIzlRNaGW97xEb/2ErRbSgDpkuuIlAxLykw4mGod2nd6ziifou4usSCxcEWihty/B1SeAdNCE/corYRxO1txeHL6w4E8q5Y68xLI3bzW8pOWiySsYpNA+F1v5c0yUnlsvwURGDQhu0yesZsdXTkF98aN834lf+Eb3lP/B6CzO3Amsn1E2Gfu77h7qH/CGUn5HzpNhL87Ljrhp5ZwCQzOu6oNRrlR0hBxy7aLDv167AdbKQTIZo4sepWTNMK23MjtaNesDAMU08VgSaH3F4AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAACMlyWPTiSJ8bs9ECkUjg2DC1oTmdr/EIQEjnvY2+n4WQMGRm/lIRcy/+ytunLDm+e8jOW7xfcSayxDmzpAAAAAu6nN/XmuJp8Db7aXm0uYp3KSexdu9rcZZXaHIfHx8uTsgRBREqJX1h30z18T7gobAZGXyMU0O08qfsiEauIsGu8Ni2/aLOukHaFdQJXR2jkqDS+O0MbHvA9M+sjCgLVtBpuIV/6rgYT7aH9jRhjANdrEOdwa6ztVmKDwAAAAAAEGm4uYWqtTKkUJDehVf83cvmy378c6CmWwb5IDXbc+7Aan1RcZLFxRIYzJTD1K8X9Y2u4Im6H9ROPb2YoAAAAABt324ddloZPZy+FGzut5rBy0he1fWzeROoz1hX7/AKlmcm3QJD5/XiE4nDDqNootQizJhe85xH/7f7PQFMjncAkLAAUC4JMEAAsACQOVdQAAAAAAAAkCAAF8AwAAANHL2veLXXlCWoRMcV5ecqGK5NZ7MZQlmkqr2KqqaWumIAAAAAAAAAA0VXBEMmZoN3hIM1ZQOVFRYVh0c1MxWVkzYnh6V2h0ZsCnlwAAAAAAFAUAAAAAAAAGm4uYWqtTKkUJDehVf83cvmy378c6CmWwb5IDXbc+7BAFAQIAERIBBgkCAAgMAgAAAJCkIAAAAAAACgcACAAPCRIRAAoHAAYAAwkSEQAQDggGBAUDAgwHAQAODQASCQ6ghgEAAAAAABIDCAAAAQk="
	legacySignedTx          = "AYTk34Oql2cYQmaF+V5kRmhk3snfBwWCsSaFrpUKojPDG0tseRVrPy4mDPBf7W2dP+ipfw4mm6eubsMT17cKdwUBAAoT0cva94tdeUJahExxXl5yoYrk1nsxlCWaSqvYqqppa6YRmJQz2BPHWeODDKN8Qtx9iPTXJqZBIdulNKq1NcTf7jOzHsTv+PoomuqMlUwBYy4tdkkIzlRNaGW97xEb/2ErRbSgDpkuuIlAxLykw4mGod2nd6ziifou4usSCxcEWihty/B1SeAdNCE/corYRxO1txeHL6w4E8q5Y68xLI3bzW8pOWiySsYpNA+F1v5c0yUnlsvwURGDQhu0yesZsdXTkF98aN834lf+Eb3lP/B6CzO3Amsn1E2Gfu77h7qH/CGUn5HzpNhL87Ljrhp5ZwCQzOu6oNRrlR0hBxy7aLDv167AdbKQTIZo4sepWTNMK23MjtaNesDAMU08VgSaH3F4AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAACMlyWPTiSJ8bs9ECkUjg2DC1oTmdr/EIQEjnvY2+n4WQMGRm/lIRcy/+ytunLDm+e8jOW7xfcSayxDmzpAAAAAu6nN/XmuJp8Db7aXm0uYp3KSexdu9rcZZXaHIfHx8uTsgRBREqJX1h30z18T7gobAZGXyMU0O08qfsiEauIsGu8Ni2/aLOukHaFdQJXR2jkqDS+O0MbHvA9M+sjCgLVtBpuIV/6rgYT7aH9jRhjANdrEOdwa6ztVmKDwAAAAAAEGm4uYWqtTKkUJDehVf83cvmy378c6CmWwb5IDXbc+7Aan1RcZLFxRIYzJTD1K8X9Y2u4Im6H9ROPb2YoAAAAABt324ddloZPZy+FGzut5rBy0he1fWzeROoz1hX7/AKlmcm3QJD5/XiE4nDDqNootQizJhe85xH/7f7PQFMjncAkLAAUC4JMEAAsACQOVdQAAAAAAAAkCAAF8AwAAANHL2veLXXlCWoRMcV5ecqGK5NZ7MZQlmkqr2KqqaWumIAAAAAAAAAA0VXBEMmZoN3hIM1ZQOVFRYVh0c1MxWVkzYnh6V2h0ZsCnlwAAAAAAFAUAAAAAAAAGm4uYWqtTKkUJDehVf83cvmy378c6CmWwb5IDXbc+7BAFAQIAERIBBgkCAAgMAgAAAJCkIAAAAAAACgcACAAPCRIRAAoHAAYAAwkSEQAQDggGBAUDAgwHAQAODQASCQ6ghgEAAAAAABIDCAAAAQk="
	legacyBlockhash         = "7tundXorVXYY2cjaBq8WDDLAz3X7AhNJsZpyGMPAbU7h"
	versionedUnsignedTx     = "AQAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAACAAQADBtHL2veLXXlCWoRMcV5ecqGK5NZ7MZQlmkqr2KqqaWumAsdJ+MLHwJwkLcM/DVenjI6q9RQhnxKyWVUXQWa4BSh9+vRWPcRHjSHT5FiJaeHhaUDdkoTv/ibHdZHMHpbkYQMGRm/lIRcy/+ytunLDm+e8jOW7xfcSayxDmzpAAAAAMdjhfd4PWcGOB1uYyp1rZcj6JO1QbSBsXr48GA8CN39bF8fIam5zn68XUYGDY+lPkIvzcATObT+88Ze90vUfHHrR344h8Qz+PiG3R/+v65WYQ2dwCPNMzokGqsnOrpwWAgMACQNQwwAAAAAAAAQLBQEABgcIAgAJBggRdf+aR/U6X1kQJwAAAAAAAAABxzn1RUDrpZ6nv3JQ3k8eedEJfsImTqq3Px255rI83OgCAwUCBCY="
	versionedSignedTx       = "AXEne4zpxgHsa4kvOzhmSxK4oh2RpAKrpbhXANH07gIBqlOxa3ldvPWCgAybYIuAIWzkLY7y6hYLGbxdw4MRNAaAAQADBtHL2veLXXlCWoRMcV5ecqGK5NZ7MZQlmkqr2KqqaWumAsdJ+MLHwJwkLcM/DVenjI6q9RQhnxKyWVUXQWa4BSh9+vRWPcRHjSHT5FiJaeHhaUDdkoTv/ibHdZHMHpbkYQMGRm/lIRcy/+ytunLDm+e8jOW7xfcSayxDmzpAAAAAMdjhfd4PWcGOB1uYyp1rZcj6JO1QbSBsXr48GA8CN39bF8fIam5zn68XUYGDY+lPkIvzcATObT+88Ze90vUfHHrR344h8Qz+PiG3R/+v65WYQ2dwCPNMzokGqsnOrpwWAgMACQNQwwAAAAAAAAQLBQEABgcIAgAJBggRdf+aR/U6X1kQJwAAAAAAAAABxzn1RUDrpZ6nv3JQ3k8eedEJfsImTqq3Px255rI83OgCAwUCBCY="
	versionedBlockhash      = "9GSMRUkUAJYXU9Xz4XgGUMY9c1ndqUk4929WTPaVCZP3"
	receiverUnsignedTx      = "AgAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAgAHE9HL2veLXXlCWoRMcV5ecqGK5NZ7MZQlmkqr2KqqaWumTbN4X+WyPEKmz78gUw7kPfJ34GDbmN0M4dBnbI7Pl6oROS/6uomKs1GUntZaCNOynoyjJ2kB9EBx9SZlpld+yTcupyMWhev/jm806YQiUQh8olPQsaooX014ecIG/rQRWULT4sVshXcKatT1WLCJwf7YCp3vT7uUhMV9AJbAktF4uHnwlmWTP7i+YDLj4DLfYY7WuoP6ysbgf33fp2sJQ3369FY9xEeNIdPkWIlp4eFpQN2ShO/+Jsd1kcweluRhiYvr57A0tT1PTgLkQvb3+hBw3Ww08mC6UmkqwSJtjA62Ao8MrgKvcKTga+Z6q+/rlkq4vpLGNizNGBSgLpyUh7auMGL4kkJbZoqV68a+yV6pUyhBDDP5mIaOJrfqBkDwywKD1IYsYCTn8dvguormrOz3uyCHQWI3q883baADVC/tmCcgLAYIi9oQSjVpIzlazKwEC/xgz3x8f3UH3ygj7wAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAYhnpBCJt8bHy/4ogw1J7KOnj3PZwzCT1lg0LNtN5Bi+F/gItgg96L89o2JXC/COCZ6dbAiQ020h+0Nzd3oIXEQabiFf+q4GE+2h/Y0YYwDXaxDncGus7VZig8AAAAAABBqfVFxksXFEhjMlMPUrxf1ja7gibof1E49vZigAAAAAG3fbh12Whk9nL4UbO63msHLSF7V9bN5E6jPWFfv8AqQ4DaF+OkJBT5FgSHGb1p2rtx3BqoRyC+KqVKo8reHmp9aQP2xHW5ToEY0rvLwQDSWm/UPFv5nqMDU5wfHYbURAEDAIAATQAAAAA8B0fAAAAAAClAAAAAAAAAAbd9uHXZaGT2cvhRs7reawctIXtX1s3kTqM9YV+/wCpEQQBDwAQAQESFBEACAIBCwYHAQMKBAkJCQUFBQ4NO8Ng7WxEotvmCgAAAAAAAACTAQAAAAAAAAEAAa8zG6gyf7s1scT+/wAAAABQOwEAAQAAAAAAAAAAAAAAEQMBAAABCQ=="
	receiverSignedTx        = "AiUkCo2fSFiCBBCgSZ4F8XR3u2gGzzHPU1eNyvz0Ey1+cqQlq/y+hh1xx+Hjn6HVOd7JvmmJnrjrjO9hrFcZZQIAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAgAHE9HL2veLXXlCWoRMcV5ecqGK5NZ7MZQlmkqr2KqqaWumTbN4X+WyPEKmz78gUw7kPfJ34GDbmN0M4dBnbI7Pl6oROS/6uomKs1GUntZaCNOynoyjJ2kB9EBx9SZlpld+yTcupyMWhev/jm806YQiUQh8olPQsaooX014ecIG/rQRWULT4sVshXcKatT1WLCJwf7YCp3vT7uUhMV9AJbAktF4uHnwlmWTP7i+YDLj4DLfYY7WuoP6ysbgf33fp2sJQ3369FY9xEeNIdPkWIlp4eFpQN2ShO/+Jsd1kcweluRhiYvr57A0tT1PTgLkQvb3+hBw3Ww08mC6UmkqwSJtjA62Ao8MrgKvcKTga+Z6q+/rlkq4vpLGNizNGBSgLpyUh7auMGL4kkJbZoqV68a+yV6pUyhBDDP5mIaOJrfqBkDwywKD1IYsYCTn8dvguormrOz3uyCHQWI3q883baADVC/tmCcgLAYIi9oQSjVpIzlazKwEC/xgz3x8f3UH3ygj7wAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAYhnpBCJt8bHy/4ogw1J7KOnj3PZwzCT1lg0LNtN5Bi+F/gItgg96L89o2JXC/COCZ6dbAiQ020h+0Nzd3oIXEQabiFf+q4GE+2h/Y0YYwDXaxDncGus7VZig8AAAAAABBqfVFxksXFEhjMlMPUrxf1ja7gibof1E49vZigAAAAAG3fbh12Whk9nL4UbO63msHLSF7V9bN5E6jPWFfv8AqQ4DaF+OkJBT5FgSHGb1p2rtx3BqoRyC+KqVKo8reHmp9aQP2xHW5ToEY0rvLwQDSWm/UPFv5nqMDU5wfHYbURAEDAIAATQAAAAA8B0fAAAAAAClAAAAAAAAAAbd9uHXZaGT2cvhRs7reawctIXtX1s3kTqM9YV+/wCpEQQBDwAQAQESFBEACAIBCwYHAQMKBAkJCQUFBQ4NO8Ng7WxEotvmCgAAAAAAAACTAQAAAAAAAAEAAa8zG6gyf7s1scT+/wAAAABQOwEAAQAAAAAAAAAAAAAAEQMBAAABCQ=="
	receiverBlockhash       = "HXsz2MHGFu5VqSJZ7KMyboDZJLfMcN2sa2jDnpuTzSFR"
	receiverSignature       = "k4z1JxCSjBKDEbMCQj6aZJJgJgtoxUnEGZJNRYiGiTzTyAvB1Tzaamfwxdzsms9iSrFPKpDRVS5Yh1ScJFPFLKs"
	senderUnsignedTx        = "Ap6zKWvWlgd0ICJPyuAQLCiRv6RwWOPNOEfF+cffja+rljr/GqJpmUxXaP7Kb81qLmVjUGucmNRZp7sLW7HEWg4AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAgEGC92gIQD99/51qLbWc7d5WojjJE40xdVtvQwQIe8z3kZo0cva94tdeUJahExxXl5yoYrk1nsxlCWaSqvYqqppa6Y3c+dMp9VE6tXsYqZWY5AFARhuy5wbb2YF9VKslqmuYEFazacjR0XZrvgcKDOZnQDIpiKAiJevaKtngDiqTdXRffr0Vj3ER40h0+RYiWnh4WlA3ZKE7/4mx3WRzB6W5GEAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAMGRm/lIRcy/+ytunLDm+e8jOW7xfcSayxDmzpAAAAABt324ddloZPZy+FGzut5rBy0he1fWzeROoz1hX7/AKkWHlK6uJknHZO7juRzrr83NbHhSpB+m2d99aPD6DvLD4yXJY9OJInxuz0QKRSODYMLWhOZ2v8QhASOe9jb6fhZxvp6877brTo9ZfNqq8l0MbG75MLS9uDkfKYCA0UvXWFLwb0qjTubchFpROs4NlqdbSPc3OmOZZGbfC+1Ul9fngUGAAUCQEIPAAYACQMAAAAAAAAAAAkGAAMICgUHAQAHBAQDAQEJA2P/AgAAAAAABwQEAgEBCQMt0QAAAAAAAA=="
	senderSignedTx          = "Ap6zKWvWlgd0ICJPyuAQLCiRv6RwWOPNOEfF+cffja+rljr/GqJpmUxXaP7Kb81qLmVjUGucmNRZp7sLW7HEWg7X2sasG5LnyMHHYCTxvEUmypcQEa0qf3OdKmoACaC5INCQPi2hp1fYsfkbxaSFHoLCSW6i5zMV9bIZpsN5m08NAgEGC92gIQD99/51qLbWc7d5WojjJE40xdVtvQwQIe8z3kZo0cva94tdeUJahExxXl5yoYrk1nsxlCWaSqvYqqppa6Y3c+dMp9VE6tXsYqZWY5AFARhuy5wbb2YF9VKslqmuYEFazacjR0XZrvgcKDOZnQDIpiKAiJevaKtngDiqTdXRffr0Vj3ER40h0+RYiWnh4WlA3ZKE7/4mx3WRzB6W5GEAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAMGRm/lIRcy/+ytunLDm+e8jOW7xfcSayxDmzpAAAAABt324ddloZPZy+FGzut5rBy0he1fWzeROoz1hX7/AKkWHlK6uJknHZO7juRzrr83NbHhSpB+m2d99aPD6DvLD4yXJY9OJInxuz0QKRSODYMLWhOZ2v8QhASOe9jb6fhZxvp6877brTo9ZfNqq8l0MbG75MLS9uDkfKYCA0UvXWFLwb0qjTubchFpROs4NlqdbSPc3OmOZZGbfC+1Ul9fngUGAAUCQEIPAAYACQMAAAAAAAAAAAkGAAMICgUHAQAHBAQDAQEJA2P/AgAAAAAABwQEAgEBCQMt0QAAAAAAAA=="
	senderExistingSignature = "4B2hSYeSHM5AB5mqQFX7t7Ckpq2CKKbdkzdKnZKqVKMD1PAgo8YdifCthyXLS93HTGHge7sbght8ycZNoPepEFoK"
	senderSignature         = "5KJmAje8dJJyrG7xpekHKTQEr8t5iHVfaC3MvYrP91NDDgGXt15LX16YASHCzgfbFeEhMfFGNS422jErKqn71Jd2"
	senderBlockhash         = "66ivRKuuUcN57EcBqtYMucThhPhRm6ZmH3Kbk2vbJPJ5"
	walletUnsignedTx        = "AgAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAUfAKGV9uw9h0dhWb/glBW2vnGqXHd+c9lKEd3EVg+dtffBs6Wlvj9svCEjZcXHyIZ3xS4rj8zpQkVXUtjBmsLAgAKENHL2veLXXlCWoRMcV5ecqGK5NZ7MZQlmkqr2KqqaWumi8gFfVLRqGlWQMlIXIAQpdb6pQwbkzq1VPL9rPKjV7kr1lQqaOSFYS9WELcT14N7mJY9eLJbJXlsZ9Z5/AUPNkwLKxPjXqRuX5TZBccJ2WRO0qjuZzPzqFdncg8vWz45fvy+/SUYA+TAXz8ruI65e2kjhp+mg2AawUQN5bX3gP68K5ZficO5VwesMce/cvsBy5AvfQoKym53Aehbqm9wSQAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAASj7vSwPIKnFZnqB6Fu5Lz23OMTV9hGCyrBvUw6mGDJ1UX6MOo7w/PClm2otsPf7406t9pXygIypU5KAmT//DwgMGRm/lIRcy/+ytunLDm+e8jOW7xfcSayxDmzpAAAAACVTbvp7JYMmKeik/4hM2lm/hgNFRrkuBeVYfiYVKU/bqoCDGHMR5cSgTRhzhU4lKlqbACyHtDPwnmNH5qenJSu8Ni2/aLOukHaFdQJXR2jkqDS+O0MbHvA9M+sjCgLVtBpuIV/6rgYT7aH9jRhjANdrEOdwa6ztVmKDwAAAAAAEGp9UXGSxcUSGMyUw9SvF/WNruCJuh/UTj29mKAAAAAAbd9uHXZaGT2cvhRs7reawctIXtX1s3kTqM9YV+/wCpkRdIS4Uf1lOIIH03UKufBY2K1atOv3eUwl5+GsBLsRQFCQAFAsAnCQAGAgABNAAAAAAgHZoAAAAAAKUAAAAAAAAABt324ddloZPZy+FGzut5rBy0he1fWzeROoz1hX7/AKkPBAENAA4BAQoLBwQDAAUBDwsMCAIT8iPGiVLh8rYBAKCGAQAAAAAAAA8DAQAAAQk="
	walletSignedTx          = "Aq/evSDXvErhQ3IosEqB0M8iTXlerkvQPA+5lvhIRe9TL7eq4NXXPcpQv4dUMGYdqIqacQTvu4LRzZ8b1PDQ/gwUfAKGV9uw9h0dhWb/glBW2vnGqXHd+c9lKEd3EVg+dtffBs6Wlvj9svCEjZcXHyIZ3xS4rj8zpQkVXUtjBmsLAgAKENHL2veLXXlCWoRMcV5ecqGK5NZ7MZQlmkqr2KqqaWumi8gFfVLRqGlWQMlIXIAQpdb6pQwbkzq1VPL9rPKjV7kr1lQqaOSFYS9WELcT14N7mJY9eLJbJXlsZ9Z5/AUPNkwLKxPjXqRuX5TZBccJ2WRO0qjuZzPzqFdncg8vWz45fvy+/SUYA+TAXz8ruI65e2kjhp+mg2AawUQN5bX3gP68K5ZficO5VwesMce/cvsBy5AvfQoKym53Aehbqm9wSQAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAASj7vSwPIKnFZnqB6Fu5Lz23OMTV9hGCyrBvUw6mGDJ1UX6MOo7w/PClm2otsPf7406t9pXygIypU5KAmT//DwgMGRm/lIRcy/+ytunLDm+e8jOW7xfcSayxDmzpAAAAACVTbvp7JYMmKeik/4hM2lm/hgNFRrkuBeVYfiYVKU/bqoCDGHMR5cSgTRhzhU4lKlqbACyHtDPwnmNH5qenJSu8Ni2/aLOukHaFdQJXR2jkqDS+O0MbHvA9M+sjCgLVtBpuIV/6rgYT7aH9jRhjANdrEOdwa6ztVmKDwAAAAAAEGp9UXGSxcUSGMyUw9SvF/WNruCJuh/UTj29mKAAAAAAbd9uHXZaGT2cvhRs7reawctIXtX1s3kTqM9YV+/wCpkRdIS4Uf1lOIIH03UKufBY2K1atOv3eUwl5+GsBLsRQFCQAFAsAnCQAGAgABNAAAAAAgHZoAAAAAAKUAAAAAAAAABt324ddloZPZy+FGzut5rBy0he1fWzeROoz1hX7/AKkPBAENAA4BAQoLBwQDAAUBDwsMCAIT8iPGiVLh8rYBAKCGAQAAAAAAAA8DAQAAAQk="
	walletBlockhash         = "AmNi2ByGKxqmdMmv2uqkAPMpbu2r8VxLb78FFYLpW6Z9"
	walletSignature         = "4WwWzwNKPkWXGytQeoc8L2ndpMjvjbpD89aK7nk3tFdbpHcZAZqkRL9VXvSs3kma4kSLjaS3RFaPHWVcCc3WYjcF"
	transferAsMessage       = "AQABAvgqkM3VuRGEx9d9Nxkc2mkQbyWkAIKgKm8Kc6kWriuNAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAADw9HByfZnAzxsUu0r8ArmMmQchplDaq1uPaGgpIw/QSgEBAgAADAIAAABAQg8AAAAAAA=="
	signInMessage           = "bWFnaWNlZGVuLmlvIHdhbnRzIHlvdSB0byBzaWduIGluIHdpdGggeW91ciBTb2xhbmEgYWNjb3VudDoKRjd4VnlRdUx6dnlVS2JNUXlyQkhhcVlHQ3pIV3Btc29jbjhiN29SVXllQzUKCkNsaWNrIFNpZ24gb3IgQXBwcm92ZSBvbmx5IG1lYW5zIHlvdSBoYXZlIHByb3ZlZCB0aGlzIHdhbGxldCBpcyBvd25lZCBieSB5b3UuIFRoaXMgcmVxdWVzdCB3aWxsIG5vdCB0cmlnZ2VyIGFueSBibG9ja2NoYWluIHRyYW5zYWN0aW9uIG9yIGNvc3QgYW55IGdhcyBmZWUuIFVzZSBvZiBvdXIgd2Vic2l0ZSBhbmQgc2VydmljZSBhcmUgc3ViamVjdCB0byBvdXIgVGVybXMgb2YgU2VydmljZTogaHR0cHM6Ly9tYWdpY2VkZW4uaW8vdGVybXMtb2Ytc2VydmljZS5wZGYgYW5kIFByaXZhY3kgUG9saWN5OiBodHRwczovL21hZ2ljZWRlbi5pby9wcml2YWN5LXBvbGljeS5wZGYKClVSSTogaHR0cHM6Ly9tYWdpY2VkZW4uaW8KVmVyc2lvbjogMQpDaGFpbiBJRDogbWFpbm5ldApOb25jZTogUG5MemxNaFVaeApJc3N1ZWQgQXQ6IDIwMjMtMDQtMjFUMDg6MzU6MDguMTMyWg=="
	signInSignature         = "z/DaX3zde+wxLHOR8ahRYOIa1GItHyUxuCcbfontSzvtYEq9+wodK75qBKoeqn8rEV6Yg3zJHTWVM7eQKcWlDQ=="
	brokenKeypair           = "Gm8YqXq1U5NYyeHt7XmMu9TEMUU8e4dSurhe55e41nFPa7er9oCaMNu1zHBhiprs2F2QnudEfRAmCrRCbb8FDPr"
	appendSignature         = "3f75BQ998yqJbEqMo78TSTMJk7phRZha1q298t7FbSUi54kPCrLv4yrBrQdE7tUEmBTLUAswjrMVAGgxpDyXAHzL"
	rawKeyArray             = "[89, 35, 184, 142, 158, 93, 59, 17, 149, 153, 229, 56, 52, 46, 14, 247, 169, 118, 131, 84, 126, 3, 25, 239, 20, 216, 231, 172, 96, 201, 69, 128, 249, 100, 99, 204, 73, 189, 89, 199, 229, 125, 53, 183, 99, 173, 199, 6, 168, 196, 163, 19, 148, 94, 155, 180, 28, 151, 216, 49, 22, 145, 143, 151]"
	rawKeyArrayAddress      = "HnXJX1Bvps8piQwDYEYC6oea9GEkvQvahvRj3c97X9xr"
	rawKeyArray2            = "[126, 249, 31, 59, 155, 202, 96, 175, 18, 63, 64, 2, 141, 163, 23, 239, 139, 142, 6, 65, 10, 29, 228, 121, 237, 108, 13, 232, 198, 238, 207, 47, 75, 83, 65, 81, 121, 108, 47, 242, 135, 76, 161, 239, 42, 160, 141, 176, 93, 218, 100, 34, 112, 34, 73, 44, 136, 224, 18, 240, 43, 121, 14, 232]"
	rawKeyArray2Address     = "653D6kzCj8JjsErCgwpYS8TF4tJhtUGB7NYi4VVdwEns"
	rawKeyHex               = "685dfe9f42a5ae73e9ca75776a37d7e7a84a8e16df67bd9fa4bbe7e1daea4713c2618f316bc0ec0d36bf0284189c7e43549958be927e91f746b434a1d0979046"
	rawKeyHexAddress        = "E5nNmfoMkc86poF7F85Lxpb2VETvDV6X6C9FPRBArwvu"
	jupiterSwapTx           = "AQAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAACAAQAGCmb9xdrDtJYk7SvJmju4CpS8tgk++rcm6zvJ55YhNnkyFyMa9+i/QdXyfkMKzum7vNcYFEYFPWEHOkn7ubmPMy8uy3ly9YjP0u4bWlq58MCtylAkiN9u7LB/14O1R2UKGEtLpKDA2nb16o7DnkNeYpajr8pWfkX5+cYZej/F5CTJAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAADBkZv5SEXMv/srbpyw5vnvIzlu8X3EmssQ5s6QAAAAAR51VvyMcBu7nTFbs5oFQf9sbLeo/SOUQKxzaJWvBOPBt324ddloZPZy+FGzut5rBy0he1fWzeROoz1hX7/AKmMlyWPTiSJ8bs9ECkUjg2DC1oTmdr/EIQEjnvY2+n4WbQ/+if11/ZKdMCbHylYed5LCas238ndUUsyGqezjOXo4AY1NdAvbDuSSJJNK0yR9lJs7g4BkENiJvgeZ7c1JKcHBQAFAm5dAgAFAAkDBgAAAAAAAAAIBgACABEEBwEBBAIAAgwCAAAAAOH1BQAAAAAHAQIBEQYdBwACAwYTBgkGEA4QCwoCAxETDxAABwcSEA0MAQYj5RfLl3rjrSoBAAAAJmQAAQDh9QUAAAAA53bhAAAAAAAsAQAHAwIAAAEJAbaRFM1U56as5v3jHnktfIiBQXM0Thew4qJELNzQaM6RBqnMqM/R0AQlAhXN"
)
